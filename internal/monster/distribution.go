package monster

import (
	"fmt"
	"math"

	"github.com/osse101/middleearth/internal/domain"
)

// boundaryTolerance absorbs float noise in hand-written interval bounds
const boundaryTolerance = 1e-9

// Interval maps a species to the half-open range [Lower, Upper) of a uniform draw
type Interval struct {
	Species string  `json:"species" validate:"required"`
	Lower   float64 `json:"lower" validate:"gte=0,lte=1"`
	Upper   float64 `json:"upper" validate:"gte=0,lte=1"`
}

// Distribution is a region's spawn table. Intervals must partition [0,1) in order.
type Distribution []Interval

// Validate checks that the intervals are sorted, contiguous, non-empty,
// start at 0 and end at 1
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: distribution has no intervals", domain.ErrInvalidConfig)
	}

	expected := 0.0
	for i, iv := range d {
		if math.Abs(iv.Lower-expected) > boundaryTolerance {
			return fmt.Errorf("%w: interval %d (%s) starts at %g, expected %g",
				domain.ErrDistributionGap, i, iv.Species, iv.Lower, expected)
		}
		if iv.Upper <= iv.Lower {
			return fmt.Errorf("%w: interval %d (%s) is empty or reversed [%g, %g)",
				domain.ErrInvalidConfig, i, iv.Species, iv.Lower, iv.Upper)
		}
		expected = iv.Upper
	}

	if math.Abs(expected-1) > boundaryTolerance {
		return fmt.Errorf("%w: intervals end at %g, expected 1", domain.ErrDistributionGap, expected)
	}
	return nil
}

// Pick returns the species whose interval contains u
func (d Distribution) Pick(u float64) (string, bool) {
	for _, iv := range d {
		if u >= iv.Lower && u < iv.Upper {
			return iv.Species, true
		}
	}
	return "", false
}

// CountRange is the inclusive range of monsters a random encounter spawns
type CountRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"gtefield=Min"`
}

// RegionTable is everything the factory knows about one region
type RegionTable struct {
	Count  CountRange
	Spawns Distribution
}
