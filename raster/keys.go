package raster

// Field identifies one grid-valued quantity tracked by the domain.
type Field int

const (
	// externally supplied
	Dem Field = iota
	Friction
	H
	Y
	EffPorosity
	CapPressure
	HydConductivity
	InInf
	Losses
	Rain
	Inflow
	BCVal
	BCType
	// internal/derived
	Inf
	HMax
	Ext
	HFE
	HFS
	QE
	QS
	QENew
	QSNew
	ETP
	UE
	US
	V
	VDir
	VMax
	Froude
	NDrain
	CappedLosses
	DirE
	DirS
	// cumulated volumetric trackers
	StBound
	StInf
	StRain
	StETP
	StInflow
	StLosses
	StNDrain
	StHErr

	nfield
)

var fieldNames = [nfield]string{
	"dem", "friction", "h", "y",
	"effective_porosity", "capillary_pressure", "hydraulic_conductivity", "in_inf",
	"losses", "rain", "inflow", "bcval", "bctype",
	"inf", "hmax", "ext", "hfe", "hfs",
	"qe", "qs", "qe_new", "qs_new", "etp",
	"ue", "us", "v", "vdir", "vmax", "fr",
	"n_drain", "capped_losses", "dire", "dirs",
	"st_bound", "st_inf", "st_rain", "st_etp",
	"st_inflow", "st_losses", "st_ndrain", "st_herr",
}

func (f Field) String() string {
	if f < 0 || f >= nfield {
		return "unknown"
	}
	return fieldNames[f]
}

// inputFields lists the externally supplied fields in refresh order.
// Dem must stay first: the domain mask is derived from it before any
// other field is masked.
var inputFields = []Field{Dem, Friction, H, Y, EffPorosity, CapPressure,
	HydConductivity, InInf, Losses, Rain, Inflow, BCVal, BCType}

var statFields = []Field{StBound, StInf, StRain, StETP, StInflow, StLosses, StNDrain, StHErr}

// statCorresp maps a rate field to its cumulative tracker.
var statCorresp = map[Field]Field{
	Inf:          StInf,
	Rain:         StRain,
	Inflow:       StInflow,
	CappedLosses: StLosses,
	NDrain:       StNDrain,
}

// mmh fields are stored in mm/h and need conversion to m/s before any
// volumetric arithmetic.
func isMmh(f Field) bool {
	switch f {
	case Rain, Inf, CappedLosses:
		return true
	}
	return false
}
