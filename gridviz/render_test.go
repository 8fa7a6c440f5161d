package gridviz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirollos21/mazeroute/grid"
	"github.com/kirollos21/mazeroute/gridviz"
	"github.com/kirollos21/mazeroute/netroute"
	"github.com/kirollos21/mazeroute/point"
)

func TestRender_PathAndObstaclesAndBlank(t *testing.T) {
	g, err := grid.New(3, 1)
	require.NoError(t, err)
	g.Block(point.Point{Layer: 2, X: 2, Y: 0})

	results := []netroute.NetResult{
		{
			Name: "net1",
			Result: &netroute.Result{
				Path: []point.Point{{Layer: 1, X: 0, Y: 0}, {Layer: 1, X: 1, Y: 0}, {Layer: 1, X: 2, Y: 0}},
			},
		},
	}

	var buf strings.Builder
	require.NoError(t, gridviz.Render(&buf, g, results))

	out := buf.String()
	assert.Contains(t, out, "layer 1\naaa\n")
	assert.Contains(t, out, "layer 2\n..#\n")
}

func TestRender_UnroutedNetOmittedFromMap(t *testing.T) {
	g, _ := grid.New(2, 1)
	results := []netroute.NetResult{{Name: "net1", Result: nil}}

	var buf strings.Builder
	require.NoError(t, gridviz.Render(&buf, g, results))
	assert.Contains(t, buf.String(), "layer 1\n..\n")
}
