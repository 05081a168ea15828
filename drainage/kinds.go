package drainage

// NodeKind is the 1D engine's node type.
type NodeKind int

const (
	Junction NodeKind = iota
	Outfall
	Storage
	Divider
)

func (k NodeKind) String() string {
	switch k {
	case Junction:
		return "junction"
	case Outfall:
		return "outfall"
	case Storage:
		return "storage"
	case Divider:
		return "divider"
	}
	return "unknown"
}

// LinkKind is the 1D engine's link type.
type LinkKind int

const (
	Conduit LinkKind = iota
	Pump
	OrificeLink
	WeirLink
	Outlet
)

func (k LinkKind) String() string {
	switch k {
	case Conduit:
		return "conduit"
	case Pump:
		return "pump"
	case OrificeLink:
		return "orifice"
	case WeirLink:
		return "weir"
	case Outlet:
		return "outlet"
	}
	return "unknown"
}

// Regime is the hydraulic exchange mode at a coupling node,
// after Chen et al. (2007).
type Regime int

const (
	NotLinked Regime = iota // node never coupled
	NoLinkage
	FreeWeir
	SubmergedWeir
	Orifice
)

func (r Regime) String() string {
	switch r {
	case NotLinked:
		return "not_linked"
	case NoLinkage:
		return "no_linkage"
	case FreeWeir:
		return "free_weir"
	case SubmergedWeir:
		return "submerged_weir"
	case Orifice:
		return "orifice"
	}
	return "unknown"
}
