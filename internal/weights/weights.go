// Package weights provides weight initialization for fully connected layers.
//
// Every weight that is not supplied explicitly is drawn uniformly from
// [-sd, +sd], where sd comes from StdDev for the layer's activation kind and
// fan-in.
package weights

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
)

// smallScale is used for periodic and bump-shaped activations.
const smallScale = 0.01

// Source produces uniformly distributed values in [lo, hi).
type Source interface {
	Value(lo, hi float64) float64
}

// UniformSource is a seeded Source. It is not safe for concurrent use.
type UniformSource struct {
	src rand.Source
}

// NewUniformSource creates a Source seeded with seed.
func NewUniformSource(seed uint64) *UniformSource {
	return &UniformSource{src: rand.NewSource(seed)}
}

// NewTimeSource creates a Source seeded from the wall clock.
func NewTimeSource() *UniformSource {
	return NewUniformSource(uint64(time.Now().UnixNano()))
}

// Value returns a sample from U[lo, hi).
func (u *UniformSource) Value(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: u.src}.Rand()
}

// StdDev returns the half-width of the sampling interval for a neuron with
// fanIn incoming weights bound to kind.
func StdDev(kind activations.Kind, fanIn int) float64 {
	if fanIn <= 0 {
		return 0
	}
	n := float64(fanIn)
	switch kind {
	case activations.ReLU, activations.LeakyReLU, activations.Swish, activations.Softplus, activations.Mish:
		// He
		return math.Sqrt(2 / n)
	case activations.Tanh, activations.Sigmoid, activations.Linear:
		// Xavier
		return math.Sqrt(1 / n)
	case activations.Softsign, activations.BentIdentity, activations.HardSigmoid:
		// LeCun
		return math.Sqrt(1 / n)
	case activations.Gaussian, activations.Sinusoid, activations.Arctan:
		return smallScale
	default:
		return 1
	}
}

// Fill overwrites dst with samples from [-sd, +sd].
func Fill(dst []float64, src Source, sd float64) {
	for i := range dst {
		dst[i] = src.Value(-sd, sd)
	}
}

// Sample draws fanIn weights for a neuron bound to kind.
func Sample(src Source, kind activations.Kind, fanIn int) []float64 {
	if fanIn <= 0 {
		return nil
	}
	w := make([]float64, fanIn)
	Fill(w, src, StdDev(kind, fanIn))
	return w
}
