package main

import (
	"math"
	"os"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/logger"
	"github.com/FlavioCFOliveira/zeuron/internal/net"
	"github.com/FlavioCFOliveira/zeuron/internal/train"
)

func main() {
	log := logger.Default()
	logger.Printf(log, logger.Blank, "=== XOR Training Example ===")

	// XOR is not linearly separable: it needs the hidden layer.
	network, err := net.New(2, []net.LayerSpec{
		{Kind: activations.Sigmoid, Neurons: 3},
		{Kind: activations.Sigmoid, Neurons: 1},
	}, 20)
	if err != nil {
		logger.Printf(log, logger.Error, "creating network: %v", err)
		os.Exit(1)
	}

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := [][]float64{{0}, {1}, {1}, {0}}

	_, err = train.Fit(network, inputs, targets, 4096,
		train.WithLogger(log),
		train.WithCallbacks(train.ProgressLogger{Interval: 512, Log: log}),
	)
	if err != nil {
		logger.Printf(log, logger.Error, "training: %v", err)
		os.Exit(1)
	}

	ev, err := train.Evaluate(network, inputs, targets, 0.05, log)
	if err != nil {
		logger.Printf(log, logger.Error, "evaluating: %v", err)
		os.Exit(1)
	}

	// Round-trip through the binary format and compare predictions.
	data, err := network.MarshalBinary()
	if err != nil {
		logger.Printf(log, logger.Error, "encoding network: %v", err)
		os.Exit(1)
	}
	loaded, err := net.Unmarshal(data)
	if err != nil {
		logger.Printf(log, logger.Error, "decoding network: %v", err)
		os.Exit(1)
	}
	for _, in := range inputs {
		want, _ := network.Predict(in)
		got, _ := loaded.Predict(in)
		if math.Abs(want[0]-got[0]) > 1e-12 {
			logger.Printf(log, logger.Error, "decoded network predicts %f for %v, want %f", got[0], in, want[0])
			os.Exit(1)
		}
	}
	logger.Printf(log, logger.Info, "Encoded network is %d bytes and predicts identically", len(data))

	if !ev.Passed() {
		os.Exit(1)
	}
}
