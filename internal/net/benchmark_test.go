// Package net provides benchmarks for neural network training.
package net

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/weights"
)

// fillRandom fills a slice with values in [0, 1).
func fillRandom(slice []float64) {
	u := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(7)}
	for i := range slice {
		slice[i] = u.Rand()
	}
}

func benchmarkNetwork(b *testing.B) *Network {
	b.Helper()
	n, err := New(784, []LayerSpec{
		{activations.Tanh, 256},
		{activations.Tanh, 128},
		{activations.Sigmoid, 10},
	}, 0.1, WithSource(weights.NewUniformSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	return n
}

// BenchmarkNetworkForward benchmarks a forward pass through a small network.
func BenchmarkNetworkForward(b *testing.B) {
	n := benchmarkNetwork(b)
	input := make([]float64, 784)
	fillRandom(input)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Forward(input)
	}
}

// BenchmarkNetworkBackward benchmarks a backward pass through a small network.
func BenchmarkNetworkBackward(b *testing.B) {
	n := benchmarkNetwork(b)
	input := make([]float64, 784)
	target := make([]float64, 10)
	fillRandom(input)
	fillRandom(target)

	// Forward pass to set up state
	_ = n.Forward(input)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Backward(target)
	}
}

// BenchmarkNetworkTrain benchmarks a full training step.
func BenchmarkNetworkTrain(b *testing.B) {
	n := benchmarkNetwork(b)
	input := make([]float64, 784)
	target := make([]float64, 10)
	fillRandom(input)
	target[3] = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.TrainPattern(input, target)
	}
}

// BenchmarkNetworkMarshal benchmarks encoding the network.
func BenchmarkNetworkMarshal(b *testing.B) {
	n := benchmarkNetwork(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = n.MarshalBinary()
	}
}

// BenchmarkNetworkUnmarshal benchmarks decoding the network.
func BenchmarkNetworkUnmarshal(b *testing.B) {
	data, err := benchmarkNetwork(b).MarshalBinary()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Unmarshal(data); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNetworkParams benchmarks flattening parameters.
func BenchmarkNetworkParams(b *testing.B) {
	n := benchmarkNetwork(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Params()
	}
}
