package nn

import (
	"math"
	"math/rand/v2"
)

// Xavier draws a weight from the Xavier (Glorot) uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
//
// Parameters:
//   - fanIn: Number of input units
//   - fanOut: Number of output units
func Xavier(fanIn, fanOut int) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return (rand.Float64()*2.0 - 1.0) * bound
}
