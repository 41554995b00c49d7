package layer

import (
	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/weights"
)

// DefaultBias is the bias a neuron starts with unless one is supplied.
const DefaultBias = 1.0

// Neuron is a single unit of a fully connected layer.
type Neuron struct {
	Bias     float64
	Gradient float64
	// Weights has one entry per neuron of the previous layer.
	Weights []float64
	// OutputValue is the activated value, or the external input for input neurons.
	OutputValue float64
	// InputValue is the weighted sum plus bias from the last forward pass.
	InputValue float64
}

// NeuronOption configures NewNeuron.
type NeuronOption func(*neuronOptions)

type neuronOptions struct {
	bias     float64
	gradient float64
	weights  []float64
}

// WithBias sets the initial bias.
func WithBias(b float64) NeuronOption {
	return func(o *neuronOptions) {
		o.bias = b
	}
}

// WithGradient sets the initial gradient.
func WithGradient(g float64) NeuronOption {
	return func(o *neuronOptions) {
		o.gradient = g
	}
}

// WithWeights supplies leading weights. Weights beyond len(w) are sampled;
// entries beyond the fan-in are dropped.
func WithWeights(w []float64) NeuronOption {
	return func(o *neuronOptions) {
		o.weights = w
	}
}

// NewNeuron creates a neuron with fanIn incoming weights. Missing weights are
// drawn from src using the initialization scale for kind. src may be nil when
// every weight is supplied.
func NewNeuron(kind activations.Kind, fanIn int, src weights.Source, opts ...NeuronOption) Neuron {
	options := neuronOptions{bias: DefaultBias}
	for _, opt := range opts {
		opt(&options)
	}

	var w []float64
	if fanIn > 0 {
		w = make([]float64, fanIn)
		supplied := copy(w, options.weights)
		if supplied < fanIn {
			weights.Fill(w[supplied:], src, weights.StdDev(kind, fanIn))
		}
	}

	return Neuron{
		Bias:     options.bias,
		Gradient: options.gradient,
		Weights:  w,
	}
}

// Clone returns a deep copy of the neuron.
func (n *Neuron) Clone() Neuron {
	c := *n
	if n.Weights != nil {
		c.Weights = append([]float64(nil), n.Weights...)
	}
	return c
}
