package drainage

import (
	"fmt"

	"github.com/im7mortal/UTM"
)

// PrintSummary writes a node table to stdout. Node coordinates are
// held in UTM; utmZone converts them back to lat/long for reporting.
func (nw *Network) PrintSummary(utmZone int) {
	fmt.Printf(" %-12s %-10s %10s %10s %10s %10s\n",
		"node", "kind", "lat", "long", "crest", "area")
	for _, n := range nw.Nodes {
		lat, lng := -9999., -9999.
		if la, lo, err := UTM.ToLatLon(n.Coord.X, n.Coord.Y, utmZone, "", true); err == nil {
			lat, lng = la, lo
		}
		fmt.Printf(" %-12s %-10s %10.5f %10.5f %10.3f %10.3f\n",
			n.ID, n.Kind, lat, lng, n.CrestElev, n.OverflowArea)
	}
	fmt.Printf(" %d nodes, %d links\n", len(nw.Nodes), len(nw.Links))
}
