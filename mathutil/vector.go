package mathutil

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Direction returns v normalized. A zero vector stays zero instead of becoming NaN.
func Direction(v r3.Vec) r3.Vec {
	if r3.Norm2(v) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(v)
}

// RandomVectorInCube samples each axis uniformly between min and max.
// Inverted bounds on an axis are swapped.
func RandomVectorInCube(rng *rand.Rand, min, max r3.Vec) r3.Vec {
	return r3.Vec{
		X: uniform(rng, min.X, max.X),
		Y: uniform(rng, min.Y, max.Y),
		Z: uniform(rng, min.Z, max.Z),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	v := lo + rng.Float64()*(hi-lo)
	if v > hi {
		return hi
	}
	return v
}
