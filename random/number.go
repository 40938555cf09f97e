package random

import (
	"math"
	"math/rand/v2"

	"github.com/kbukum/reddish/errors"
)

// Int returns a uniformly distributed integer in [minVal, maxVal].
func Int(minVal, maxVal int) int {
	if minVal > maxVal {
		panic(errors.InvalidRange("min cannot be greater than max", minVal, maxVal))
	}
	span := uint64(maxVal) - uint64(minVal)
	if span == math.MaxUint64 {
		return int(rand.Uint64())
	}
	return minVal + int(rand.Uint64N(span+1))
}

// Float returns a uniformly distributed float in [minVal, maxVal).
func Float(minVal, maxVal float64) float64 {
	if !(minVal < maxVal) {
		panic(errors.InvalidRange("min must be less than max", minVal, maxVal))
	}
	f := rand.Float64()
	r := minVal*(1-f) + maxVal*f
	switch {
	case r < minVal:
		r = minVal
	case r >= maxVal:
		r = math.Nextafter(maxVal, minVal)
	}
	return r
}

// Bool returns true or false with equal probability.
func Bool() bool {
	return rand.Uint64()&1 == 1
}

// BoolWithProbability returns true with probability p, which must lie in [0, 1].
func BoolWithProbability(p float64) bool {
	if !(p >= 0 && p <= 1) {
		panic(errors.InvalidRange("probability must be between 0.0 and 1.0", 0.0, 1.0).WithDetail("probability", p))
	}
	return rand.Float64() < p
}
