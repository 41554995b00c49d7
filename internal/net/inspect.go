package net

import (
	"github.com/FlavioCFOliveira/zeuron/internal/layer"
	"github.com/FlavioCFOliveira/zeuron/internal/logger"
)

// Snapshot returns a deep copy of every layer. Call it from the goroutine that
// drives the network; the copy may then be handed to any observer.
func (n *Network) Snapshot() []layer.Layer {
	layers := make([]layer.Layer, len(n.layers))
	for i := range n.layers {
		layers[i] = n.layers[i].Clone()
	}
	return layers
}

// Clone returns an independent deep copy of the network, including its
// clipping configuration.
func (n *Network) Clone() *Network {
	return &Network{
		LearningRate: n.LearningRate,
		layers:       n.Snapshot(),
		kinds:        n.Kinds(),
		funcs:        append(n.funcs[:0:0], n.funcs...),
		clip:         n.clip,
		clipped:      n.clipped,
	}
}

// Dump logs one line per layer and one per neuron with its cached values.
func (n *Network) Dump(log logger.Logger) {
	for li := range n.layers {
		kind := "input"
		if li > 0 {
			kind = n.kinds[li-1].String()
		}
		logger.Printf(log, logger.Blank, "Layer: %d (%s)", li, kind)
		for j, neuron := range n.layers[li].Neurons {
			logger.Printf(log, logger.Blank,
				"\tNeuron: %d, inputValue: %f, outputValue: %f, bias: %f, gradient: %f",
				j, neuron.InputValue, neuron.OutputValue, neuron.Bias, neuron.Gradient)
		}
	}
}
