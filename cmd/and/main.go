package main

import (
	"os"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/logger"
	"github.com/FlavioCFOliveira/zeuron/internal/net"
	"github.com/FlavioCFOliveira/zeuron/internal/train"
)

func main() {
	log := logger.Default()

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := [][]float64{{0}, {0}, {0}, {1}}

	// 2 inputs -> 2 sigmoid -> 1 sigmoid
	network, err := net.New(2, []net.LayerSpec{
		{Kind: activations.Sigmoid, Neurons: 2},
		{Kind: activations.Sigmoid, Neurons: 1},
	}, 20)
	if err != nil {
		logger.Printf(log, logger.Error, "creating network: %v", err)
		os.Exit(1)
	}

	if _, err := train.Fit(network, inputs, targets, 4096, train.WithLogger(log)); err != nil {
		logger.Printf(log, logger.Error, "training: %v", err)
		os.Exit(1)
	}

	ev, err := train.Evaluate(network, inputs, targets, 0.05, log)
	if err != nil {
		logger.Printf(log, logger.Error, "evaluating: %v", err)
		os.Exit(1)
	}
	if !ev.Passed() {
		os.Exit(1)
	}
}
