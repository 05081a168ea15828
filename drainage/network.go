package drainage

import (
	"fmt"
	"time"

	"github.com/lrntct/itzi/raster"
)

// Network is the registry of coupling nodes and reporting links,
// bound to one 1D engine. Nodes keep their insertion order so the
// write-back into the drainage-source field stays deterministic.
type Network struct {
	eng   Engine
	Nodes []*Node
	Links []*Link
}

func NewNetwork(eng Engine) *Network { return &Network{eng: eng} }

func (nw *Network) Engine() Engine { return nw.eng }

func (nw *Network) AddNode(n *Node) { nw.Nodes = append(nw.Nodes, n) }
func (nw *Network) AddLink(l *Link) { nw.Links = append(nw.Links, l) }

// Init aligns each linkable node with the surface: bounds-checks its
// cell, raises its crest to the ground elevation and overrides the
// engine's ponded area.
func (nw *Network) Init(dom *raster.Domain) error {
	dem := dom.Arr(raster.Dem)
	for _, n := range nw.Nodes {
		if !n.IsLinkable() {
			continue
		}
		if n.Row >= dom.Nr || n.Col >= dom.Nc {
			return fmt.Errorf("drainage: node %s cell (%d,%d) outside %dx%d domain",
				n.ID, n.Row, n.Col, dom.Nr, dom.Nc)
		}
		// refresh before comparing against the engine's crest
		if err := n.Update(nw.eng); err != nil {
			return err
		}
		if err := n.SetCrestElev(nw.eng, dem[n.Row][n.Col]); err != nil {
			return err
		}
		if err := n.SetPondedArea(nw.eng); err != nil {
			return err
		}
	}
	return nil
}

// RoutingStep returns the 1D routing time step in seconds.
func (nw *Network) RoutingStep() float64 { return nw.eng.RoutingStep() }

// CoupleStep advances the 1D engine one routing step and recomputes
// the exchange flow at every linkable node. The previous source term
// is accumulated into its statistic tracker before being overwritten.
// Each node's flow is pushed into the engine as an inflow (positive
// into the node) and into the domain's drainage-source field [m/s].
func (nw *Network) CoupleStep(dom *raster.Domain, t time.Time, dt2d float64) error {
	if err := dom.PopulateStatArray(raster.NDrain, t); err != nil {
		return err
	}
	if _, err := nw.eng.Step(); err != nil {
		return fmt.Errorf("drainage: engine step: %w", err)
	}
	dt1d := nw.eng.RoutingStep()

	dem, h := dom.Arr(raster.Dem), dom.Arr(raster.H)
	qd := dom.Arr(raster.NDrain)
	for i := range qd {
		for j := range qd[i] {
			qd[i][j] = 0.
		}
	}
	for _, n := range nw.Nodes {
		if !n.IsLinkable() {
			continue
		}
		if err := n.Update(nw.eng); err != nil {
			return err
		}
		wse := dem[n.Row][n.Col] + h[n.Row][n.Col]
		if err := n.SetLinkageFlow(wse, dom.CellSurf, dt2d, dt1d); err != nil {
			return err
		}
		// positive linkage flow leaves the drainage
		if err := nw.eng.AddNodeInflow(n.ID, -n.Flow); err != nil {
			return fmt.Errorf("drainage: node %s: %w", n.ID, err)
		}
		qd[n.Row][n.Col] += n.Flow / dom.CellSurf
	}
	dom.SetNew(raster.NDrain, true)
	return nil
}

// RefreshLinks updates every link record from the engine.
func (nw *Network) RefreshLinks() error {
	for _, l := range nw.Links {
		if err := l.Update(nw.eng); err != nil {
			return err
		}
	}
	return nil
}
