package weights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
)

// TestStdDev tests the initialization family chosen for every kind.
func TestStdDev(t *testing.T) {
	tests := []struct {
		kind     activations.Kind
		fanIn    int
		expected float64
	}{
		{activations.ReLU, 8, 0.5},
		{activations.LeakyReLU, 2, 1},
		{activations.Swish, 50, math.Sqrt(2.0 / 50)},
		{activations.Softplus, 4, math.Sqrt(0.5)},
		{activations.Mish, 2, 1},
		{activations.Tanh, 4, 0.5},
		{activations.Sigmoid, 16, 0.25},
		{activations.Linear, 1, 1},
		{activations.Softsign, 9, 1.0 / 3},
		{activations.BentIdentity, 25, 0.2},
		{activations.HardSigmoid, 100, 0.1},
		{activations.Gaussian, 7, 0.01},
		{activations.Sinusoid, 300, 0.01},
		{activations.Arctan, 1, 0.01},
		{activations.None, 3, 1},
		{activations.Kind(77), 3, 1},
		{activations.Sigmoid, 0, 0},
	}

	for _, tt := range tests {
		got := StdDev(tt.kind, tt.fanIn)
		if math.Abs(got-tt.expected) > 1e-15 {
			t.Errorf("StdDev(%v, %d) = %v, want %v", tt.kind, tt.fanIn, got, tt.expected)
		}
	}
}

// TestSampleWithinBounds draws many weights per kind and checks the interval.
func TestSampleWithinBounds(t *testing.T) {
	src := NewUniformSource(7)
	for _, kind := range activations.Kinds() {
		for _, fanIn := range []int{1, 3, 64} {
			sd := StdDev(kind, fanIn)
			for i := 0; i < 200; i++ {
				for _, w := range Sample(src, kind, fanIn) {
					if w < -sd || w > sd {
						t.Fatalf("Sample(%v, %d) produced %v outside [-%v, %v]", kind, fanIn, w, sd, sd)
					}
				}
			}
		}
	}
}

// TestSampleDistribution checks the samples look uniform around zero.
func TestSampleDistribution(t *testing.T) {
	src := NewUniformSource(11)
	w := Sample(src, activations.ReLU, 20000)
	sd := StdDev(activations.ReLU, 20000)

	require.Len(t, w, 20000)
	assert.InDelta(t, 0, stat.Mean(w, nil), sd*0.05)
	// Variance of U[-a, a] is a^2/3.
	assert.InDelta(t, sd*sd/3, stat.Variance(w, nil), sd*sd*0.05)
	assert.LessOrEqual(t, floats.Max(w), sd)
	assert.GreaterOrEqual(t, floats.Min(w), -sd)
}

// TestUniformSourceDeterministic tests that equal seeds give equal streams.
func TestUniformSourceDeterministic(t *testing.T) {
	a := NewUniformSource(42)
	b := NewUniformSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Value(-1, 1), b.Value(-1, 1))
	}
	assert.Equal(t, 3.0, a.Value(3, 3))
}

// TestSampleInputLayer tests that a zero fan-in yields no weights.
func TestSampleInputLayer(t *testing.T) {
	assert.Nil(t, Sample(NewUniformSource(1), activations.None, 0))
}
