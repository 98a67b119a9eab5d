package diagram

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// routesMarker is replaced by the CSV rows of the graph.
const routesMarker = ">>> routes <<<"

// Horizontal and vertical distance between layout slots, in draw.io units.
const (
	ColumnWidth = 180
	RowHeight   = 110
)

// drawioTemplate is the draw.io CSV import header.
// See https://drawio-app.com/blog/import-from-csv-to-drawio/
const drawioTemplate = `## https://drawio-app.com/blog/import-from-csv-to-drawio/
# label: %component%
# style: shape=%shape%;html=1;strokeWidth=2;outlineConnect=0;dashed=0;align=center;fontSize=12;fillColor=#c0f5a9;verticalLabelPosition=bottom;verticalAlign=top;
# namespace: csvimport-
# connect: {"from":"refs", "to":"id", "invert":false, "style": \
#            "curved=0;endArrow=none;endFill=0;dashed=0;strokeColor=#6c8ebf;"}
# width: 150
# height: 90
# padding: 1
# ignore: id,shape,fill,stroke,refs
# nodespacing: 5
# levelspacing: 5
# edgespacing: 5
# layout: horizontaltree
## CSV data starts below this line
id,component,shape,refs
` + routesMarker + "\n"

// Template returns the draw.io CSV import template with its routes marker in place.
func Template() string {
	return drawioTemplate
}

// DrawIO writes g as a draw.io CSV import document.
func DrawIO(w io.Writer, g *domain.Graph, layout Layout, styles map[domain.Shape]string) error {
	positioned := layout == LayoutPositioned

	var rows strings.Builder
	cw := csv.NewWriter(&rows)
	for _, n := range g.Nodes {
		record := []string{n.ID, n.Label, style(n.Shape, styles), n.ParentID}
		if positioned {
			record = append(record,
				strconv.Itoa(n.Position.Depth*ColumnWidth),
				strconv.Itoa(n.Position.Row*RowHeight),
			)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write node %s: %w", n.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	header := drawioTemplate
	if positioned {
		header = strings.NewReplacer(
			"# ignore: id,shape,fill,stroke,refs", "# ignore: id,shape,fill,stroke,refs,left,top",
			"# layout: horizontaltree", "# left: left\n# top: top\n# layout: none",
			"id,component,shape,refs\n", "id,component,shape,refs,left,top\n",
		).Replace(header)
	}

	out := strings.Replace(header, routesMarker+"\n", rows.String(), 1)
	_, err := io.WriteString(w, out)
	return err
}

func style(shape domain.Shape, styles map[domain.Shape]string) string {
	if s, ok := styles[shape]; ok && s != "" {
		return s
	}
	return string(shape)
}
