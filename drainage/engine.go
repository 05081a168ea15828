package drainage

import "errors"

var (
	// ErrUnknownRegime reports a regime classification falling through
	// every guard. Should be unreachable; surfaced rather than papered
	// over, mass conservation depends on it.
	ErrUnknownRegime = errors.New("drainage: unknown linkage regime")

	// ErrDrainedCell reports a capped exchange whose head difference
	// precondition does not hold.
	ErrDrainedCell = errors.New("drainage: non-positive head difference while capping")

	// ErrCannotOverflow reports an overflow-area query on a node kind
	// that cannot overflow.
	ErrCannotOverflow = errors.New("drainage: node kind cannot overflow")
)

// NodeData mirrors one node record of the 1D engine, in SI units.
type NodeData struct {
	Kind       NodeKind
	SubIndex   int
	InvertElev float64
	InitDepth  float64
	FullDepth  float64
	SurDepth   float64
	PondedArea float64
	Degree     int
	CrownElev  float64
	Inflow     float64
	Outflow    float64
	Losses     float64
	Volume     float64
	FullVolume float64
	Overflow   float64
	Depth      float64
	LatFlow    float64
	Head       float64
	CrestElev  float64
}

// LinkData mirrors one link record of the 1D engine, in SI units.
type LinkData struct {
	Kind            LinkKind
	Flow            float64
	Depth           float64
	Velocity        float64
	Volume          float64
	StartNodeOffset float64
	EndNodeOffset   float64
	FullDepth       float64
	Froude          float64
}

// Engine is the 1D drainage simulation the core couples with. All
// quantities cross this boundary in SI units; inflows are positive
// into the node.
type Engine interface {
	NodeData(id string) (NodeData, error)
	LinkData(id string) (LinkData, error)
	// MinSurfArea is the default node surface area under dynamic wave
	// routing; junctions overflow through it.
	MinSurfArea() float64
	// NodeSurfArea is the node's own surface area at the given depth;
	// meaningful for storage nodes.
	NodeSurfArea(id string, depth float64) float64
	AddNodeInflow(id string, q float64) error
	SetNodeFullDepth(id string, depth float64) error
	SetNodePondedArea(id string, area float64) error
	// RoutingStep is the 1D routing time step in seconds.
	RoutingStep() float64
	// Step advances the 1D simulation by one routing step and returns
	// the new elapsed time in seconds.
	Step() (float64, error)
}
