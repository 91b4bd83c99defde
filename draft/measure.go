package draft

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMeasurement flags a measurement that is not a strictly
// positive, finite number.
var ErrInvalidMeasurement = errors.New("measurement must be a positive number")

// Measurements is the input of a pattern draft. All values are body
// measurements in centimeters.
//
// No cross-field plausibility is enforced: a bottom width exceeding the
// seat drafts a physically odd but well-formed pattern. This mirrors
// the drafting method, which trusts the measurer.
type Measurements struct {
	Waist          float64 `json:"waist"`
	Seat           float64 `json:"seat"`
	BodyRise       float64 `json:"body_rise"`
	Inseam         float64 `json:"inseam"`
	BottomWidth    float64 `json:"bottom_width"`
	WaistbandDepth float64 `json:"waistband_depth"`
}

// Validate checks every measurement for being strictly positive and
// finite. The first offending field is reported by name.
//
// The point-set builders themselves do not call Validate: the drafting
// formulas accept zero and near-zero values without a floor (a known
// gap of the method), so enforcement is left to the caller at the
// input boundary.
func (m Measurements) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"waist", m.Waist},
		{"seat", m.Seat},
		{"body_rise", m.BodyRise},
		{"inseam", m.Inseam},
		{"bottom_width", m.BottomWidth},
		{"waistband_depth", m.WaistbandDepth},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%w: %s = %g", ErrInvalidMeasurement, f.name, f.value)
		}
	}
	return nil
}
