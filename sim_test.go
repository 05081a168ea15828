package itzi

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lrntct/itzi/raster"
)

// constProvider serves flat constant maps valid for the whole run.
type constProvider struct {
	vals map[raster.Field]float64
	n    int
}

func (p *constProvider) Fetch(f raster.Field, t time.Time) ([]float64, time.Time, time.Time, error) {
	start := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	v, ok := p.vals[f]
	if !ok {
		return nil, start, end, nil
	}
	a := make([]float64, p.n)
	for i := range a {
		a[i] = v
	}
	return a, start, end, nil
}

// extKernel raises the depth by the external forcing each step.
type extKernel struct{}

func (extKernel) Step(d *raster.Domain, dt float64) error {
	h, ext := d.Arr(raster.H), d.Arr(raster.Ext)
	for i := range h {
		for j := range h[i] {
			h[i][j] += ext[i][j] * dt
		}
	}
	return nil
}

type countingRecorder struct {
	records map[string]int
	last    map[string][]float64
}

func (r *countingRecorder) Record(name string, a []float64, t time.Time) error {
	if r.records == nil {
		r.records = map[string]int{}
		r.last = map[string][]float64{}
	}
	r.records[name]++
	r.last[name] = a
	return nil
}

// failingKernel aborts the run after a fixed number of steps.
type failingKernel struct{ after, n int }

func (k *failingKernel) Step(d *raster.Domain, dt float64) error {
	k.n++
	if k.n > k.after {
		return errors.New("kernel diverged")
	}
	return nil
}

func TestRunAccumulatesInflow(t *testing.T) {
	prov := &constProvider{vals: map[raster.Field]float64{raster.Inflow: 0.001}, n: 4}
	dom, err := raster.NewDomain(2, 2, 1., 1., prov, raster.Outputs{H: true})
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	rec := &countingRecorder{}
	start := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	sim := New(dom, nil, extKernel{}, rec, start, start.Add(10*time.Second), 1., 5.)
	if err := sim.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// 0.001 m/s over 10 s on every cell of a 2x2 m² domain
	if got := dom.WaterVolume(); math.Abs(got-0.04) > 1e-9 {
		t.Fatalf("water volume = %g, want 0.04", got)
	}
	if rec.records["h"] < 2 {
		t.Fatalf("recorded %d depth outputs, want at least 2", rec.records["h"])
	}
	for _, v := range rec.last["h"] {
		if math.Abs(v-0.01) > 1e-9 {
			t.Fatalf("recorded depth %g, want 0.01", v)
		}
	}
}

func TestRunClosesMonitorOnError(t *testing.T) {
	prov := &constProvider{n: 4}
	dom, err := raster.NewDomain(2, 2, 1., 1., prov, raster.Outputs{})
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	start := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	sim := New(dom, nil, &failingKernel{after: 2}, nil, start, start.Add(10*time.Second), 1., 5.)
	fp := filepath.Join(t.TempDir(), "massbal.csv")
	if err := sim.Monitor(fp); err != nil {
		t.Fatalf("Monitor: %v", err)
	}
	if err := sim.Run(); err == nil {
		t.Fatalf("kernel failure not propagated")
	}
	// the monitor must be closed on the error path too: the header
	// row is flushed to disk
	b, err := os.ReadFile(fp)
	if err != nil {
		t.Fatalf("monitor file: %v", err)
	}
	if !strings.HasPrefix(string(b), "time,volume") {
		t.Fatalf("monitor header missing: %q", string(b))
	}
}
