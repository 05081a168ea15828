package itzi

import (
	"fmt"
	"os"
	"time"

	"github.com/lrntct/itzi/raster"
	"gopkg.in/yaml.v3"
)

// Config is the YAML run description: domain geometry, time window,
// step lengths and output selection.
type Config struct {
	Rows int     `yaml:"rows"`
	Cols int     `yaml:"cols"`
	Dx   float64 `yaml:"dx"`
	Dy   float64 `yaml:"dy"`
	Gdef string  `yaml:"gdef"` // optional grid definition file

	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`

	Dt2d      float64 `yaml:"dt2d"`            // surface step [s]
	RecordSec float64 `yaml:"record_interval"` // [s]

	MassBalance string `yaml:"massbal"` // CSV path, empty = no monitor
	UTMZone     int    `yaml:"utm_zone"`

	Outputs raster.Outputs `yaml:"outputs"`
}

// LoadConfig reads and validates a YAML run description.
func LoadConfig(fp string) (*Config, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" itzi.LoadConfig %v", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf(" itzi.LoadConfig %v", err)
	}
	if c.Rows < 1 || c.Cols < 1 {
		return nil, fmt.Errorf(" itzi.LoadConfig: invalid domain %dx%d", c.Rows, c.Cols)
	}
	if !c.End.After(c.Start) {
		return nil, fmt.Errorf(" itzi.LoadConfig: end %v not after start %v", c.End, c.Start)
	}
	if c.Dt2d <= 0 {
		return nil, fmt.Errorf(" itzi.LoadConfig: invalid dt2d %g", c.Dt2d)
	}
	if c.RecordSec <= 0 {
		c.RecordSec = c.End.Sub(c.Start).Seconds()
	}
	return &c, nil
}

// BuildDomain constructs the raster domain described by the
// configuration, from the grid definition file when one is given.
func (c *Config) BuildDomain(prov raster.Provider) (*raster.Domain, error) {
	if c.Gdef != "" {
		d, _, err := raster.FromGDEF(c.Gdef, c.Rows, c.Cols, prov, c.Outputs)
		return d, err
	}
	return raster.NewDomain(c.Rows, c.Cols, c.Dx, c.Dy, prov, c.Outputs)
}
