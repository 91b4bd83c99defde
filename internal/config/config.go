// Package config loads drafting runs from a JSON file, with CLI flags
// taking priority over file settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/seamly/drafter/draft"
)

// Config holds the measurements and output settings of one drafting
// run.
type Config struct {
	Measurements draft.Measurements `json:"measurements"`

	// Output settings
	Title           string `json:"title"`
	Output          string `json:"output"` // empty means a derived filename
	Format          string `json:"format"` // pdf, svg or png
	DebugLabels     bool   `json:"debug_labels"`
	SamplesPerCurve int    `json:"samples_per_curve"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not set on the command line".
type Flags struct {
	Waist          float64
	Seat           float64
	BodyRise       float64
	Inseam         float64
	BottomWidth    float64
	WaistbandDepth float64

	Title       string
	Output      string
	Format      string
	DebugLabels bool
}

// Resolve overrides file settings with CLI flags and fills in
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Waist > 0 {
		c.Measurements.Waist = flags.Waist
	}
	if flags.Seat > 0 {
		c.Measurements.Seat = flags.Seat
	}
	if flags.BodyRise > 0 {
		c.Measurements.BodyRise = flags.BodyRise
	}
	if flags.Inseam > 0 {
		c.Measurements.Inseam = flags.Inseam
	}
	if flags.BottomWidth > 0 {
		c.Measurements.BottomWidth = flags.BottomWidth
	}
	if flags.WaistbandDepth > 0 {
		c.Measurements.WaistbandDepth = flags.WaistbandDepth
	}

	if flags.Title != "" {
		c.Title = flags.Title
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.DebugLabels {
		c.DebugLabels = true
	}

	if c.Title == "" {
		c.Title = "Trousers Draft"
	}
	if c.Format == "" {
		c.Format = "pdf"
	}
	c.Format = strings.ToLower(c.Format)
	if c.SamplesPerCurve <= 0 {
		c.SamplesPerCurve = 16
	}
}
