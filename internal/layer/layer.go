// Package layer provides the neurons and layers of a fully connected network.
package layer

import (
	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/weights"
)

// Layer is an ordered set of neurons sharing the same fan-in. Neuron order is
// significant: the next layer addresses weights by neuron index.
type Layer struct {
	Neurons []Neuron
}

// New creates a layer of size neurons, each with fanIn sampled weights. The
// input layer is New(width, 0, activations.None, nil).
func New(size, fanIn int, kind activations.Kind, src weights.Source) Layer {
	neurons := make([]Neuron, size)
	for i := range neurons {
		neurons[i] = NewNeuron(kind, fanIn, src)
	}
	return Layer{Neurons: neurons}
}

// Size returns the number of neurons.
func (l *Layer) Size() int {
	return len(l.Neurons)
}

// FanIn returns the number of incoming weights per neuron.
func (l *Layer) FanIn() int {
	if len(l.Neurons) == 0 {
		return 0
	}
	return len(l.Neurons[0].Weights)
}

// Outputs appends every neuron's OutputValue to dst and returns the result.
func (l *Layer) Outputs(dst []float64) []float64 {
	for i := range l.Neurons {
		dst = append(dst, l.Neurons[i].OutputValue)
	}
	return dst
}

// Params returns all weights followed by all biases, flattened (copy).
func (l *Layer) Params() []float64 {
	params := make([]float64, 0, l.Size()*(l.FanIn()+1))
	for i := range l.Neurons {
		params = append(params, l.Neurons[i].Weights...)
	}
	for i := range l.Neurons {
		params = append(params, l.Neurons[i].Bias)
	}
	return params
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() Layer {
	neurons := make([]Neuron, len(l.Neurons))
	for i := range l.Neurons {
		neurons[i] = l.Neurons[i].Clone()
	}
	return Layer{Neurons: neurons}
}
