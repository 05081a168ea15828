// Package itzi keeps the state of a 2D/1D flood simulation consistent
// over time: input rasters refreshed from an external provider,
// time-weighted mass-balance statistics, and the exchange flow between
// the 2D surface grid and a 1D piped-drainage network.
//
// The shallow-water kernel that advances the depth and discharge
// fields, the geographic data provider and the 1D drainage engine are
// external collaborators accessed through interfaces.
package itzi

import (
	"time"

	"github.com/lrntct/itzi/drainage"
	"github.com/lrntct/itzi/raster"
)

// Kernel is the numerical routine advancing the surface fields. It
// reads the domain's interior/padded views and writes the next face
// discharges into QENew/QSNew; the simulation promotes them by
// swapping buffers after each step.
type Kernel interface {
	Step(d *raster.Domain, dt float64) error
}

// Recorder consumes assembled output arrays at each record interval.
// Persistence formats are not this package's concern.
type Recorder interface {
	Record(name string, a []float64, t time.Time) error
}

// Simulation drives the step loop: input refresh, forcing
// recombination, kernel step, drainage coupling whenever the 1D
// routing step elapses, statistic accumulation, and record-interval
// output assembly.
type Simulation struct {
	Dom *raster.Domain
	Net *drainage.Network // nil = no drainage coupling
	Krn Kernel
	Rec Recorder

	Start, End time.Time
	Dt2d       float64 // surface model time step [s]
	RecordSec  float64 // record interval [s]

	mon *massBalance
}

// New assembles a simulation. Network, kernel, recorder and monitor
// are optional.
func New(dom *raster.Domain, net *drainage.Network, krn Kernel, rec Recorder,
	start, end time.Time, dt2d, recordSec float64) *Simulation {
	return &Simulation{
		Dom:       dom,
		Net:       net,
		Krn:       krn,
		Rec:       rec,
		Start:     start,
		End:       end,
		Dt2d:      dt2d,
		RecordSec: recordSec,
	}
}

// Monitor attaches a mass-balance CSV monitor writing one row per
// record interval.
func (sim *Simulation) Monitor(fp string) error {
	mon, err := newMassBalance(fp)
	if err != nil {
		return err
	}
	sim.mon = mon
	return nil
}
