package itzi

import (
	"fmt"
	"time"

	"github.com/lrntct/itzi/raster"
	"github.com/maseology/mmio"
)

// massBalance writes one CSV row of domain volumes per record.
type massBalance struct {
	csvw *mmio.CSVwriter
}

func newMassBalance(fp string) (*massBalance, error) {
	csvw := mmio.NewCSVwriter(fp)
	if err := csvw.WriteHead("time,volume,boundary,rain,infiltration,inflow,losses,drainage,error"); err != nil {
		return nil, fmt.Errorf(" itzi.newMassBalance %v", err)
	}
	return &massBalance{csvw: csvw}, nil
}

func (m *massBalance) write(d *raster.Domain, t time.Time) error {
	rain, err := d.RainVolume(t)
	if err != nil {
		return err
	}
	inf, err := d.InfVolume(t)
	if err != nil {
		return err
	}
	inflow, err := d.InflowVolume(t)
	if err != nil {
		return err
	}
	losses, err := d.LossesVolume(t)
	if err != nil {
		return err
	}
	ndrain, err := d.NDrainVolume(t)
	if err != nil {
		return err
	}
	m.csvw.WriteLine(t.Format("2006-01-02 15:04:05"), d.WaterVolume(),
		d.BoundaryVolume(), rain, inf, inflow, losses, ndrain, d.ErrVolume())
	return nil
}

func (m *massBalance) close() { m.csvw.Close() }
