// Package mathutil provides range mapping, quaternion and sampling helpers
// shared by the motion components.
package mathutil

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrInvalidArgument is returned for degenerate ranges and bin counts.
var ErrInvalidArgument = errors.New("invalid argument")

// Tolerances used when comparing range bounds.
const (
	approxAbsTol = 1e-9
	approxRelTol = 1e-6
)

// Approximately reports whether a and b are equal within floating point tolerance.
func Approximately(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, approxAbsTol, approxRelTol)
}

// MapToRange maps value from [sourceLow, sourceHigh] onto [targetLow, targetHigh].
// The result is not clamped.
func MapToRange(value, sourceLow, sourceHigh, targetLow, targetHigh float64) (float64, error) {
	if Approximately(sourceLow, sourceHigh) {
		return 0, fmt.Errorf("%w: empty source range [%g, %g]", ErrInvalidArgument, sourceLow, sourceHigh)
	}
	if Approximately(targetLow, targetHigh) {
		return 0, fmt.Errorf("%w: empty target range [%g, %g]", ErrInvalidArgument, targetLow, targetHigh)
	}
	return (value-sourceLow)/(sourceHigh-sourceLow)*(targetHigh-targetLow) + targetLow, nil
}

// DiscretizeToRange snaps value to the center of one of binCount equal bins
// spanning [low, high]. Values outside the range return the nearest bound.
func DiscretizeToRange(value, low, high float64, binCount int) (float64, error) {
	if binCount <= 0 {
		return 0, fmt.Errorf("%w: bin count %d must be positive", ErrInvalidArgument, binCount)
	}
	if low >= high {
		return 0, fmt.Errorf("%w: low %g must be below high %g", ErrInvalidArgument, low, high)
	}

	if value < low {
		return low, nil
	}
	if value > high {
		return high, nil
	}

	width := (high - low) / float64(binCount)
	bin := int(math.Floor((value - low) / width))
	// value == high falls on the upper edge of the last bin
	if bin >= binCount {
		bin = binCount - 1
	}
	return low + (float64(bin)+0.5)*width, nil
}
