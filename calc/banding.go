package calc

import (
	"errors"
	"fmt"
	"math"
)

// Band charges Rate on the slice of a value between Lower and Upper.
// Upper is +Inf for the top band.
type Band struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Rate  float64 `json:"rate"`
}

// Unbounded reports whether the band has no upper limit.
func (b Band) Unbounded() bool {
	return math.IsInf(b.Upper, 1)
}

// BandCharge is the share of a banded charge that fell into one band.
type BandCharge struct {
	Band    Band    `json:"band"`
	Taxable float64 `json:"taxable"`
	Charge  float64 `json:"charge"`
}

// ErrInvalidBands reports a band list that is empty, unsorted or gapped.
var ErrInvalidBands = errors.New("invalid bands")

// ValidateBands checks that bands start at zero, are contiguous and
// ascending, carry rates in [0,1], and that only the last band is
// unbounded.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: no bands", ErrInvalidBands)
	}
	if bands[0].Lower != 0 {
		return fmt.Errorf("%w: first band starts at %v", ErrInvalidBands, bands[0].Lower)
	}
	for i, b := range bands {
		if b.Rate < 0 || b.Rate > 1 || !finite(b.Rate, b.Lower) {
			return fmt.Errorf("%w: band %d rate %v", ErrInvalidBands, i, b.Rate)
		}
		if b.Upper <= b.Lower {
			return fmt.Errorf("%w: band %d is empty", ErrInvalidBands, i)
		}
		if i > 0 && b.Lower != bands[i-1].Upper {
			return fmt.Errorf("%w: gap before band %d", ErrInvalidBands, i)
		}
		if b.Unbounded() && i != len(bands)-1 {
			return fmt.Errorf("%w: band %d is unbounded but not last", ErrInvalidBands, i)
		}
	}
	return nil
}

// ApplyBands applies progressive rates to value:
//
//	Σ rate_i * (min(value, upper_i) - lower_i)   for every band with value > lower_i
//
// A value sitting exactly on a boundary is charged entirely by the bands
// below it.
func ApplyBands(value float64, bands []Band) (float64, []BandCharge, bool) {
	if !finite(value) || value <= 0 || len(bands) == 0 {
		return 0, nil, false
	}

	total := 0.0
	charges := make([]BandCharge, 0, len(bands))
	for _, b := range bands {
		if value <= b.Lower {
			break
		}
		taxable := math.Min(value, b.Upper) - b.Lower
		charge := taxable * b.Rate
		total += charge
		charges = append(charges, BandCharge{Band: b, Taxable: taxable, Charge: charge})
	}
	return total, charges, true
}

// Surcharge returns a copy of bands with extra added to every rate.
func Surcharge(bands []Band, extra float64) []Band {
	out := make([]Band, len(bands))
	for i, b := range bands {
		b.Rate += extra
		out[i] = b
	}
	return out
}
