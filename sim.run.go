package itzi

import (
	"fmt"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/lrntct/itzi/raster"
)

// Run steps the simulation from Start to End. Fatal conditions abort
// the current step rather than continuing with corrupted state.
func (sim *Simulation) Run() error {
	nt := int(sim.End.Sub(sim.Start).Seconds() / sim.Dt2d)
	if nt < 1 {
		nt = 1
	}

	if sim.mon != nil {
		defer sim.mon.close()
	}

	uiprogress.Start()
	lbl := sim.Start.Format("2006-01-02 15:04:05")
	bar := uiprogress.AddBar(nt).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string { return lbl })
	defer uiprogress.Stop()

	t := sim.Start
	dt := time.Duration(sim.Dt2d * float64(time.Second))

	// first refresh builds the mask from the elevation before the
	// drainage network aligns to the ground
	if err := sim.Dom.UpdateInputArrays(t); err != nil {
		return err
	}
	var nextCoupling time.Time
	if sim.Net != nil {
		if err := sim.Net.Init(sim.Dom); err != nil {
			return err
		}
		nextCoupling = t.Add(time.Duration(sim.Net.RoutingStep() * float64(time.Second)))
	}
	nextRecord := t.Add(time.Duration(sim.RecordSec * float64(time.Second)))
	lastRecord := t

	for t.Before(sim.End) {
		if err := sim.Dom.UpdateInputArrays(t); err != nil {
			return fmt.Errorf("step %v: %w", t, err)
		}
		sim.Dom.UpdateExtArray()

		if sim.Krn != nil {
			if err := sim.Krn.Step(sim.Dom, sim.Dt2d); err != nil {
				return fmt.Errorf("step %v: kernel: %w", t, err)
			}
			sim.Dom.SwapArrays(raster.QE, raster.QENew)
			sim.Dom.SwapArrays(raster.QS, raster.QSNew)
		}

		if sim.Net != nil && !t.Before(nextCoupling) {
			if err := sim.Net.CoupleStep(sim.Dom, t, sim.Dt2d); err != nil {
				return fmt.Errorf("step %v: %w", t, err)
			}
			nextCoupling = nextCoupling.Add(time.Duration(sim.Net.RoutingStep() * float64(time.Second)))
		}

		t = t.Add(dt)
		if !t.Before(nextRecord) || !t.Before(sim.End) {
			if err := sim.record(t, t.Sub(lastRecord).Seconds()); err != nil {
				return err
			}
			lastRecord = t
			nextRecord = nextRecord.Add(time.Duration(sim.RecordSec * float64(time.Second)))
		}
		lbl = t.Format("2006-01-02 15:04:05")
		bar.Incr()
	}
	return nil
}

func (sim *Simulation) record(t time.Time, intervalSec float64) error {
	if sim.mon != nil {
		if err := sim.mon.write(sim.Dom, t); err != nil {
			return err
		}
	}
	if sim.Rec != nil {
		out, err := sim.Dom.GetOutputArrays(intervalSec, t)
		if err != nil {
			return err
		}
		for name, a := range out {
			if err := sim.Rec.Record(name, a, t); err != nil {
				return fmt.Errorf("record %s at %v: %w", name, t, err)
			}
		}
	}
	// statistics restart from zero at every record
	sim.Dom.ResetStats(t)
	return nil
}
