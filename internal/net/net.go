// Package net provides the fully connected feedforward network.
//
// A Network is not safe for concurrent use. Forward and the Backward that
// follows it form one unit of work: Backward reads the values Forward cached
// in every neuron. Train independent networks in parallel instead of sharing
// one, and hand observers a Snapshot rather than the live layers.
package net

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/layer"
	"github.com/FlavioCFOliveira/zeuron/internal/loss"
	"github.com/FlavioCFOliveira/zeuron/internal/weights"
)

// LayerSpec describes one non-input layer.
type LayerSpec struct {
	Kind    activations.Kind
	Neurons int
}

// Network is a multi-layer perceptron. Layer 0 is the input layer.
type Network struct {
	// LearningRate is the gradient step size. Callers may reschedule it
	// between training steps.
	LearningRate float64

	layers []layer.Layer
	kinds  []activations.Kind
	funcs  []activations.Func

	clip    float64
	clipped bool

	// Reusable buffer for the previous layer's outputs.
	prevBuf []float64
}

// Option configures New.
type Option func(*options)

type options struct {
	src     weights.Source
	clip    float64
	clipped bool
}

// WithSource sets the random source used to sample initial weights.
func WithSource(src weights.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithGradientClip bounds every gradient, and every bias touched by Reward or
// Penalize, to [-bound, +bound]. +Inf disables clipping.
func WithGradientClip(bound float64) Option {
	return func(o *options) {
		o.clip = bound
		o.clipped = true
	}
}

// New creates a network with inputs input neurons followed by one layer per
// spec, with freshly sampled weights.
func New(inputs int, specs []LayerSpec, learningRate float64, opts ...Option) (*Network, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if inputs <= 0 {
		return nil, fmt.Errorf("%w: input width %d", ErrInvalidTopology, inputs)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: at least one layer after the input layer is required", ErrInvalidTopology)
	}
	if o.src == nil {
		o.src = weights.NewTimeSource()
	}

	n := &Network{
		LearningRate: learningRate,
		layers:       make([]layer.Layer, 0, len(specs)+1),
		kinds:        make([]activations.Kind, 0, len(specs)),
		funcs:        make([]activations.Func, 0, len(specs)),
	}
	if o.clipped {
		if err := n.SetGradientClip(o.clip); err != nil {
			return nil, err
		}
	}

	n.layers = append(n.layers, layer.New(inputs, 0, activations.None, nil))
	fanIn := inputs
	for i, spec := range specs {
		if spec.Neurons <= 0 {
			return nil, fmt.Errorf("%w: layer %d has %d neurons", ErrInvalidTopology, i+1, spec.Neurons)
		}
		if spec.Kind == activations.None {
			return nil, fmt.Errorf("%w: layer %d: activation none is reserved for the input layer", ErrInvalidTopology, i+1)
		}
		f, err := activations.Lookup(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
		n.layers = append(n.layers, layer.New(spec.Neurons, fanIn, spec.Kind, o.src))
		n.kinds = append(n.kinds, spec.Kind)
		n.funcs = append(n.funcs, f)
		fanIn = spec.Neurons
	}

	return n, nil
}

// SetGradientClip enables clipping to [-bound, +bound]. +Inf disables it.
func (n *Network) SetGradientClip(bound float64) error {
	if math.IsNaN(bound) || bound < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidClipBound, bound)
	}
	if math.IsInf(bound, 1) {
		n.ClearGradientClip()
		return nil
	}
	n.clip = bound
	n.clipped = true
	return nil
}

// ClearGradientClip disables clipping.
func (n *Network) ClearGradientClip() {
	n.clip = 0
	n.clipped = false
}

// GradientClip returns the clip bound and whether clipping is enabled.
func (n *Network) GradientClip() (float64, bool) {
	return n.clip, n.clipped
}

func (n *Network) clamp(v float64) float64 {
	if !n.clipped {
		return v
	}
	if v > n.clip {
		return n.clip
	}
	if v < -n.clip {
		return -n.clip
	}
	return v
}

// Forward propagates inputs through the network. Results are read with
// Outputs.
func (n *Network) Forward(inputs []float64) error {
	in := n.layers[0].Neurons
	if len(inputs) != len(in) {
		return fmt.Errorf("%w: got %d values, input layer has %d neurons", ErrInvalidInputSize, len(inputs), len(in))
	}
	for i := range in {
		in[i].OutputValue = inputs[i]
	}

	for li := 1; li < len(n.layers); li++ {
		n.prevBuf = n.layers[li-1].Outputs(n.prevBuf[:0])
		act := n.funcs[li-1].Activate
		neurons := n.layers[li].Neurons
		for j := range neurons {
			neuron := &neurons[j]
			neuron.InputValue = floats.Dot(n.prevBuf, neuron.Weights) + neuron.Bias
			neuron.OutputValue = act(neuron.InputValue)
		}
	}
	return nil
}

// Backward computes every gradient against targets, then moves each weight
// and bias one learning-rate step along it. It relies on the values cached by
// the preceding Forward.
func (n *Network) Backward(targets []float64) error {
	last := len(n.layers) - 1
	out := n.layers[last].Neurons
	if len(targets) != len(out) {
		return fmt.Errorf("%w: got %d values, output layer has %d neurons", ErrInvalidTargetSize, len(targets), len(out))
	}

	f := n.funcs[last-1]
	for i := range out {
		neuron := &out[i]
		delta := targets[i] - neuron.OutputValue
		neuron.Gradient = n.clamp(delta * f.Slope(neuron.InputValue, neuron.OutputValue))
	}

	for li := last - 1; li > 0; li-- {
		hidden := n.layers[li].Neurons
		next := n.layers[li+1].Neurons
		f := n.funcs[li-1]
		for i := range hidden {
			var sum float64
			for k := range next {
				sum += next[k].Weights[i] * next[k].Gradient
			}
			neuron := &hidden[i]
			neuron.Gradient = n.clamp(sum * f.Slope(neuron.InputValue, neuron.OutputValue))
		}
	}

	for li := 1; li <= last; li++ {
		n.prevBuf = n.layers[li-1].Outputs(n.prevBuf[:0])
		neurons := n.layers[li].Neurons
		for j := range neurons {
			neuron := &neurons[j]
			step := n.LearningRate * neuron.Gradient
			floats.AddScaled(neuron.Weights, step, n.prevBuf)
			neuron.Bias += step
		}
	}
	return nil
}

// TrainPattern runs Forward on inputs then Backward on targets.
func (n *Network) TrainPattern(inputs, targets []float64) error {
	if err := n.Forward(inputs); err != nil {
		return err
	}
	return n.Backward(targets)
}

// Predict runs Forward and returns a copy of the outputs.
func (n *Network) Predict(inputs []float64) ([]float64, error) {
	if err := n.Forward(inputs); err != nil {
		return nil, err
	}
	return n.Outputs(), nil
}

// Loss returns the mean squared error between the current outputs and targets.
func (n *Network) Loss(targets []float64) (float64, error) {
	out := n.layers[len(n.layers)-1].Neurons
	if len(targets) != len(out) {
		return 0, fmt.Errorf("%w: got %d values, output layer has %d neurons", ErrInvalidTargetSize, len(targets), len(out))
	}
	return loss.MSE{}.Forward(n.Outputs(), targets), nil
}

// Outputs returns a copy of the output layer's values.
func (n *Network) Outputs() []float64 {
	out := &n.layers[len(n.layers)-1]
	return out.Outputs(make([]float64, 0, out.Size()))
}

// Reward grows every weight and bias by rate times itself.
func (n *Network) Reward(rate float64) {
	n.scale(rate)
}

// Penalize shrinks every weight and bias by rate times itself.
func (n *Network) Penalize(rate float64) {
	n.scale(-rate)
}

func (n *Network) scale(rate float64) {
	for li := range n.layers {
		neurons := n.layers[li].Neurons
		for j := range neurons {
			neuron := &neurons[j]
			floats.AddScaled(neuron.Weights, rate, neuron.Weights)
			neuron.Bias = n.clamp(neuron.Bias + rate*neuron.Bias)
		}
	}
}

// Layers returns the live layers. The slice and the neurons it holds belong to
// the network; read them only from the goroutine that drives it.
func (n *Network) Layers() []layer.Layer {
	return n.layers
}

// Kinds returns the activation kind of every non-input layer.
func (n *Network) Kinds() []activations.Kind {
	return append([]activations.Kind(nil), n.kinds...)
}

// InputSize returns the number of input neurons.
func (n *Network) InputSize() int {
	return n.layers[0].Size()
}

// OutputSize returns the number of output neurons.
func (n *Network) OutputSize() int {
	return n.layers[len(n.layers)-1].Size()
}

// Params returns every layer's weights and biases flattened (copy).
func (n *Network) Params() []float64 {
	var params []float64
	for i := range n.layers {
		params = append(params, n.layers[i].Params()...)
	}
	return params
}
