package gridviz

import (
	"encoding/json"
	"io"

	"github.com/kirollos21/mazeroute/netroute"
	"github.com/kirollos21/mazeroute/point"
)

// netDump is the JSON-serializable shape of one net's routing outcome.
type netDump struct {
	Name       string        `json:"name"`
	Routed     bool          `json:"routed"`
	WireLength int           `json:"wire_length,omitempty"`
	ViaCount   int           `json:"via_count,omitempty"`
	Path       []point.Point `json:"path,omitempty"`
}

// DumpJSON writes results as an indented JSON array, one object per
// net, for machine consumers. Unrouted nets appear with routed=false
// rather than being omitted, unlike the plain-text output format —
// a machine consumer needs to see every net that was attempted.
func DumpJSON(w io.Writer, results []netroute.NetResult) error {
	dump := make([]netDump, len(results))
	for i, nr := range results {
		d := netDump{Name: nr.Name}
		if nr.Result != nil {
			d.Routed = true
			d.WireLength = nr.Result.WireLength
			d.ViaCount = nr.Result.ViaCount
			d.Path = nr.Result.Path
		}
		dump[i] = d
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(dump)
}
