package ioformat

import (
	"fmt"
	"io"

	"github.com/kirollos21/mazeroute/netroute"
)

// Write emits one line per successfully routed net: "<name> (l, x, y)
// (l, x, y) ..." listing every point on the committed path in order.
// Unrouted nets (nil Result) are omitted, matching the reference
// router's write_output_file.
func Write(w io.Writer, results []netroute.NetResult) error {
	for _, nr := range results {
		if nr.Result == nil {
			continue
		}

		if _, err := fmt.Fprint(w, nr.Name); err != nil {
			return err
		}
		for _, p := range nr.Result.Path {
			if _, err := fmt.Fprintf(w, " (%d, %d, %d)", p.Layer, p.X, p.Y); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
