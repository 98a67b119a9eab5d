package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/camelgraph/internal/config"
	"github.com/aretw0/camelgraph/internal/testutils"
)

const routes = `<?xml version="1.0"?>
<camelContext xmlns="http://camel.apache.org/schema/spring">
  <route id="orders">
    <from uri="file:inbox"/>
    <to uri="jms:queue:orders"/>
  </route>
</camelContext>
`

func writeRoutes(t *testing.T, content string) string {
	return testutils.WriteFile(t, "context.xml", content)
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.InputEnv, "")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestConvert(t *testing.T) {
	path := writeRoutes(t, routes)

	code, stdout, _ := execute(t, "convert", "--xml", path)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "## CSV data starts below this line")
	assert.Contains(t, stdout, "orders,orders,mxgraph.eip.polling_consumer,")

	// The root command defaults to convert.
	code, rootOut, _ := execute(t, "--xml", path, "--format", "mermaid")
	require.Equal(t, 0, code)
	assert.Contains(t, rootOut, "graph LR")
}

func TestConvert_InputFromEnv(t *testing.T) {
	path := writeRoutes(t, routes)
	var stdout, stderr bytes.Buffer
	t.Setenv(config.InputEnv, path)

	code := run([]string{"--format", "json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), `"id": "orders"`)
}

func TestConvert_Failures(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		log  string
	}{
		{
			name: "Unknown Construct",
			args: func(t *testing.T) []string {
				bad := writeRoutes(t, `<camelContext xmlns="http://camel.apache.org/schema/spring">
  <route><from uri="direct:a"/><sample/></route>
</camelContext>`)
				return []string{"convert", "--xml", bad}
			},
			log: "tag=sample line=2",
		},
		{
			name: "Unresolved Reference",
			args: func(t *testing.T) []string {
				bad := writeRoutes(t, `<camelContext xmlns="http://camel.apache.org/schema/spring">
  <route><from uri="ref:nothing"/></route>
</camelContext>`)
				return []string{"--xml", bad}
			},
			log: "tag=from",
		},
		{
			name: "Unreadable Input",
			args: func(t *testing.T) []string {
				return []string{"convert", "--xml", filepath.Join(t.TempDir(), "missing.xml")}
			},
			log: "Conversion failed",
		},
		{
			name: "No Input",
			args: func(t *testing.T) []string { return []string{"convert"} },
			log:  config.InputEnv,
		},
		{
			name: "Bad Format",
			args: func(t *testing.T) []string {
				return []string{"convert", "--xml", writeRoutes(t, routes), "--format", "bmp"}
			},
			log: "unknown output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, tt.args(t)...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout, "nothing reaches stdout on failure")
			assert.Contains(t, stderr, tt.log)
		})
	}
}

func TestValidate(t *testing.T) {
	code, stdout, _ := execute(t, "validate", "--xml", writeRoutes(t, routes))
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "is valid: 2 nodes in 1 routes")
}

func TestInspect(t *testing.T) {
	code, stdout, _ := execute(t, "inspect", "--xml", writeRoutes(t, routes))
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "# context.xml")
	assert.Contains(t, stdout, "| polling_consumer | 1 |")
}

func TestConfigFile(t *testing.T) {
	path := writeRoutes(t, routes)
	cfgPath := testutils.WriteFile(t, "camelgraph.yaml", "input: "+path+"\nformat: yaml\n")

	code, stdout, _ := execute(t, "--config", cfgPath)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "shape: mxgraph.eip.polling_consumer")

	// Flags win over the file.
	code, stdout, _ = execute(t, "--config", cfgPath, "--format", "mermaid")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "graph LR")
}

func TestDebugLogging(t *testing.T) {
	code, _, stderr := execute(t, "--debug", "--xml", writeRoutes(t, routes))
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "tag=to line=5")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := execute(t, "version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "camelgraph version ")
}
