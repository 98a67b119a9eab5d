package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/aretw0/camelgraph/pkg/adapters/http"
	"github.com/aretw0/camelgraph/pkg/adapters/memory"
	"github.com/aretw0/camelgraph/pkg/observability"
	"github.com/aretw0/camelgraph/pkg/runner"
)

const routes = `<camelContext xmlns="http://camel.apache.org/schema/spring">
  <route id="orders">
    <from uri="direct:orders"/>
    <to uri="seda:out"/>
  </route>
</camelContext>`

func newHandler(t *testing.T, maxBody int64) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	r := runner.NewRunner()
	r.Cache = memory.NewCache()
	r.Metrics = observability.NewRecorder(reg)
	return httpadapter.NewHandler(r, reg, maxBody)
}

func post(h http.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestConvert(t *testing.T) {
	h := newHandler(t, 0)

	w := post(h, "/convert", routes)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "miss", w.Header().Get("X-Cache"))
	assert.Equal(t, "2", w.Header().Get("X-Node-Count"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "orders,orders,mxgraph.eip.polling_consumer,")

	again := post(h, "/convert", routes)
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, "hit", again.Header().Get("X-Cache"))
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestConvert_Formats(t *testing.T) {
	h := newHandler(t, 0)

	w := post(h, "/convert?format=json", routes)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body struct {
		Nodes []map[string]any `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Nodes, 2)

	w = post(h, "/convert?format=gif", routes)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(h, "/convert?beans=maybe", routes)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvert_Errors(t *testing.T) {
	h := newHandler(t, 0)

	tests := []struct {
		name   string
		body   string
		status int
		tag    string
		line   int
	}{
		{
			name:   "Unknown Construct",
			body:   strings.Replace(routes, `<to uri="seda:out"/>`, `<teleport/>`, 1),
			status: http.StatusUnprocessableEntity,
			tag:    "teleport",
			line:   4,
		},
		{
			name:   "Unresolved Reference",
			body:   strings.Replace(routes, `seda:out`, `ref:nowhere`, 1),
			status: http.StatusUnprocessableEntity,
			tag:    "to",
			line:   4,
		},
		{
			name:   "Missing Attribute",
			body:   strings.Replace(routes, `<to uri="seda:out"/>`, `<to/>`, 1),
			status: http.StatusUnprocessableEntity,
			tag:    "to",
			line:   4,
		},
		{
			name:   "Malformed Document",
			body:   "<camelContext>",
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(h, "/convert", tt.body)
			require.Equal(t, tt.status, w.Code)

			var resp httpadapter.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.tag, resp.Tag)
			assert.Equal(t, tt.line, resp.Line)
		})
	}
}

func TestConvert_BodyLimit(t *testing.T) {
	h := newHandler(t, 16)
	w := post(h, "/convert", routes)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	h := newHandler(t, 0)
	post(h, "/convert", routes)

	for _, path := range []string{"/healthz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `camelgraph_conversions_total{result="ok"} 1`)

	req = httptest.NewRequest(http.MethodOptions, "/convert", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
