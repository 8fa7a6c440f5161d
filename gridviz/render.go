package gridviz

import (
	"fmt"
	"io"

	"github.com/kirollos21/mazeroute/grid"
	"github.com/kirollos21/mazeroute/netroute"
	"github.com/kirollos21/mazeroute/point"
)

const netSymbols = "abcdefghijklmnopqrstuvwxyz"

// Render draws one ASCII map per layer: '.' for an empty cell, '#' for
// a blocked one, and a per-net letter (cycling through netSymbols,
// reused once there are more nets than symbols) along that net's
// committed path. Layers are separated by a "layer N" heading.
func Render(w io.Writer, g *grid.Grid, results []netroute.NetResult) error {
	cellNet := make(map[point.Point]byte)
	for i, nr := range results {
		if nr.Result == nil {
			continue
		}
		sym := netSymbols[i%len(netSymbols)]
		for _, p := range nr.Result.Path {
			cellNet[p] = sym
		}
	}

	for layer := 1; layer <= 2; layer++ {
		if _, err := fmt.Fprintf(w, "layer %d\n", layer); err != nil {
			return err
		}
		for y := 0; y < g.Height; y++ {
			row := make([]byte, g.Width)
			for x := 0; x < g.Width; x++ {
				p := point.Point{Layer: layer, X: x, Y: y}
				switch {
				case cellNet[p] != 0:
					row[x] = cellNet[p]
				case g.IsBlocked(p):
					row[x] = '#'
				default:
					row[x] = '.'
				}
			}
			if _, err := fmt.Fprintln(w, string(row)); err != nil {
				return err
			}
		}
	}

	return nil
}
