package drainage

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/mmaths"
)

// NodePlacement pins a node to its 2D cell; what survives a
// save/load cycle, the hydraulic record is re-queried from the
// engine on load.
type NodePlacement struct {
	ID       string
	Coord    mmaths.Point
	Row, Col int
}

type networkGob struct {
	Nodes []NodePlacement
}

// SaveGob writes the node placements to fp.
func (nw *Network) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" drainage.SaveGob %v", err)
	}
	g := networkGob{Nodes: make([]NodePlacement, len(nw.Nodes))}
	for i, n := range nw.Nodes {
		g.Nodes[i] = NodePlacement{ID: n.ID, Coord: n.Coord, Row: n.Row, Col: n.Col}
	}
	if err := gob.NewEncoder(f).Encode(g); err != nil {
		f.Close()
		return fmt.Errorf(" drainage.SaveGob %v", err)
	}
	f.Close()
	return nil
}

// LoadGobNetwork rebuilds a network from saved placements, querying
// the engine for every node record.
func LoadGobNetwork(fp string, eng Engine) (*Network, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	var g networkGob
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		f.Close()
		return nil, err
	}
	f.Close()
	nw := NewNetwork(eng)
	for _, p := range g.Nodes {
		n, err := NewNode(eng, p.ID, p.Coord, p.Row, p.Col)
		if err != nil {
			return nil, err
		}
		nw.AddNode(n)
	}
	return nw, nil
}
