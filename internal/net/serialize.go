package net

import (
	"fmt"
	"os"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/codec"
	"github.com/FlavioCFOliveira/zeuron/internal/layer"
)

// minNeuronSize is the encoded size of a neuron without weights:
// bias, gradient, weight count, output value, input value.
const minNeuronSize = 4*codec.SizeFloat64 + codec.SizeCount

// encodedSize returns the exact number of bytes Encode writes.
func (n *Network) encodedSize() int {
	size := codec.SizeFloat64 + codec.SizeCount + len(n.kinds)*codec.SizeInt32 + codec.SizeCount
	for i := range n.layers {
		size += codec.SizeCount
		for j := range n.layers[i].Neurons {
			size += minNeuronSize + len(n.layers[i].Neurons[j].Weights)*codec.SizeFloat64
		}
	}
	return size
}

// Encode appends the network to w: the learning rate, the count-prefixed
// activation codes, then the count-prefixed layers, each a count-prefixed
// list of neurons written as bias, gradient, weights, output value, input
// value. The gradient clip bound is not part of the stream.
func (n *Network) Encode(w *codec.Writer) {
	w.WriteFloat64(n.LearningRate)
	w.WriteCount(len(n.kinds))
	for _, k := range n.kinds {
		w.WriteInt32(int32(k))
	}
	w.WriteCount(len(n.layers))
	for i := range n.layers {
		neurons := n.layers[i].Neurons
		w.WriteCount(len(neurons))
		for j := range neurons {
			neuron := &neurons[j]
			w.WriteFloat64(neuron.Bias)
			w.WriteFloat64(neuron.Gradient)
			w.WriteFloat64s(neuron.Weights)
			w.WriteFloat64(neuron.OutputValue)
			w.WriteFloat64(neuron.InputValue)
		}
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n *Network) MarshalBinary() ([]byte, error) {
	w := codec.NewWriter(n.encodedSize())
	n.Encode(w)
	return w.Bytes(), nil
}

// Decode reads one network from the front of r. On error nothing is returned
// and r's position is unspecified.
func Decode(r *codec.Reader) (*Network, error) {
	lr, err := r.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("learning rate: %w", err)
	}

	numKinds, err := r.ReadCount(codec.SizeInt32)
	if err != nil {
		return nil, fmt.Errorf("activation count: %w", err)
	}
	kinds := make([]activations.Kind, numKinds)
	funcs := make([]activations.Func, numKinds)
	for i := range kinds {
		code, err := r.ReadInt32()
		if err != nil {
			return nil, fmt.Errorf("activation %d: %w", i, err)
		}
		k := activations.Kind(code)
		if k == activations.None {
			return nil, fmt.Errorf("%w: activation %d: none is reserved for the input layer", codec.ErrMalformedStream, i)
		}
		if funcs[i], err = activations.Lookup(k); err != nil {
			return nil, fmt.Errorf("%w: activation %d: %w", codec.ErrMalformedStream, i, err)
		}
		kinds[i] = k
	}

	numLayers, err := r.ReadCount(codec.SizeCount)
	if err != nil {
		return nil, fmt.Errorf("layer count: %w", err)
	}
	if numLayers != numKinds+1 || numLayers < 2 {
		return nil, fmt.Errorf("%w: %d layers for %d activations", codec.ErrMalformedStream, numLayers, numKinds)
	}

	layers := make([]layer.Layer, numLayers)
	fanIn := 0
	for i := range layers {
		numNeurons, err := r.ReadCount(minNeuronSize)
		if err != nil {
			return nil, fmt.Errorf("layer %d neuron count: %w", i, err)
		}
		if numNeurons == 0 {
			return nil, fmt.Errorf("%w: layer %d has no neurons", codec.ErrMalformedStream, i)
		}
		neurons := make([]layer.Neuron, numNeurons)
		for j := range neurons {
			if err := decodeNeuron(r, &neurons[j], fanIn); err != nil {
				return nil, fmt.Errorf("layer %d neuron %d: %w", i, j, err)
			}
		}
		layers[i] = layer.Layer{Neurons: neurons}
		fanIn = numNeurons
	}

	return &Network{
		LearningRate: lr,
		layers:       layers,
		kinds:        kinds,
		funcs:        funcs,
	}, nil
}

func decodeNeuron(r *codec.Reader, neuron *layer.Neuron, fanIn int) error {
	var err error
	if neuron.Bias, err = r.ReadFloat64(); err != nil {
		return fmt.Errorf("bias: %w", err)
	}
	if neuron.Gradient, err = r.ReadFloat64(); err != nil {
		return fmt.Errorf("gradient: %w", err)
	}
	if neuron.Weights, err = r.ReadFloat64s(); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	if len(neuron.Weights) != fanIn {
		return fmt.Errorf("%w: %d weights, previous layer has %d neurons", codec.ErrMalformedStream, len(neuron.Weights), fanIn)
	}
	if neuron.OutputValue, err = r.ReadFloat64(); err != nil {
		return fmt.Errorf("output value: %w", err)
	}
	if neuron.InputValue, err = r.ReadFloat64(); err != nil {
		return fmt.Errorf("input value: %w", err)
	}
	return nil
}

// Unmarshal decodes a network from data, which must hold exactly one network.
func Unmarshal(data []byte) (*Network, error) {
	r := codec.NewReader(data)
	n, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode network: %w", err)
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("failed to decode network: %w: %d trailing bytes", codec.ErrMalformedStream, r.Remaining())
	}
	return n, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. n is left untouched
// on error.
func (n *Network) UnmarshalBinary(data []byte) error {
	decoded, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

// Save writes the network to a file.
func (n *Network) Save(filename string) error {
	data, err := n.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to encode network: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Load reads a network written by Save.
func Load(filename string) (*Network, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Unmarshal(data)
}
