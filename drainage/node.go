package drainage

import (
	"fmt"
	"math"

	"github.com/maseology/mmaths"
)

const (
	g = 9.80665
	// length of the coupling weir in the direction of flow
	weirLength = 0.1
)

// Node is one coupling point between the 2D surface and the 1D
// network. Identity and geometry persist for the run; WSE, head,
// regime and flow are transient, recomputed every coupling step.
type Node struct {
	ID       string
	Coord    mmaths.Point
	Row, Col int
	HasCell  bool // false = no grid coordinates, node never couples

	OverflowArea float64
	WeirWidth    float64 // from the overflow area, node considered circular

	NodeData
	WSE    float64
	Regime Regime
	Flow   float64 // + leaves the drainage, - enters it
}

// NewNode queries the engine for the node's record and derives its
// static coupling geometry. Row/col below zero leave the node
// uncoupled.
func NewNode(eng Engine, id string, coord mmaths.Point, row, col int) (*Node, error) {
	n := &Node{
		ID:      id,
		Coord:   coord,
		Row:     row,
		Col:     col,
		HasCell: row >= 0 && col >= 0,
		Regime:  NotLinked,
	}
	if err := n.Update(eng); err != nil {
		return nil, err
	}
	if n.Kind == Junction {
		a, err := OverflowArea(eng, id, n.NodeData)
		if err != nil {
			return nil, err
		}
		n.OverflowArea = a
		n.WeirWidth = 2. * math.Sqrt(a/math.Pi)
	}
	return n, nil
}

// Update refreshes the node record from the engine. To be done after
// each 1D time step.
func (n *Node) Update(eng Engine) error {
	nd, err := eng.NodeData(n.ID)
	if err != nil {
		return fmt.Errorf("drainage: node %s: %w", n.ID, err)
	}
	n.NodeData = nd
	return nil
}

// OverflowArea resolves the node's maximum surface area: storage
// nodes report their own geometry, junctions the engine's minimum
// surface area; outfalls cannot overflow.
func OverflowArea(eng Engine, id string, nd NodeData) (float64, error) {
	switch nd.Kind {
	case Storage:
		return eng.NodeSurfArea(id, nd.FullDepth), nil
	case Outfall:
		return 0, fmt.Errorf("%w: node %s is an outfall", ErrCannotOverflow, id)
	}
	return eng.MinSurfArea(), nil
}

// IsLinkable reports whether the node exchanges with the surface:
// only junctions with a known grid cell do.
func (n *Node) IsLinkable() bool {
	return n.Kind == Junction && n.HasCell
}

// SetCrestElev raises the node's crest to the ground elevation of the
// 2D cell above it; the crest cannot sit below ground. Raises the
// engine's full depth when needed.
func (n *Node) SetCrestElev(eng Engine, z float64) error {
	if z > n.CrestElev {
		if err := eng.SetNodeFullDepth(n.ID, z-n.InvertElev); err != nil {
			return fmt.Errorf("drainage: node %s: %w", n.ID, err)
		}
		return n.Update(eng)
	}
	return nil
}

// SetPondedArea forces the engine's ponded area to the overflow area.
// Engine-internal ponding has no meaning under 2D coupling; the
// ponding depth keeps the node head consistent with the surface WSE.
func (n *Node) SetPondedArea(eng Engine) error {
	if err := eng.SetNodePondedArea(n.ID, n.OverflowArea); err != nil {
		return fmt.Errorf("drainage: node %s: %w", n.ID, err)
	}
	return n.Update(eng)
}
