// Sinusoid fits y = sin(x) for x in [0, 10]. A network saved by a previous run
// is reused as-is; pass any argument to keep training it.
package main

import (
	"math"
	"os"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/logger"
	"github.com/FlavioCFOliveira/zeuron/internal/net"
	"github.com/FlavioCFOliveira/zeuron/internal/timer"
	"github.com/FlavioCFOliveira/zeuron/internal/train"
)

const (
	modelFile = "sinusoidal.nrl"
	epochs    = 150000
	decay     = 0.0002
	tolerance = 0.05
)

func main() {
	log := logger.Default()

	var inputs, targets [][]float64
	for i := 0; i <= 100; i++ {
		x := float64(i) / 10
		inputs = append(inputs, []float64{x})
		targets = append(targets, []float64{math.Sin(x)})
	}

	network, err := net.Load(modelFile)
	trained := err == nil && len(os.Args) == 1
	if err != nil {
		network, err = net.New(1, []net.LayerSpec{
			{Kind: activations.Tanh, Neurons: 18},
			{Kind: activations.Tanh, Neurons: 14},
			{Kind: activations.LeakyReLU, Neurons: 10},
			{Kind: activations.Tanh, Neurons: 6},
			{Kind: activations.Tanh, Neurons: 1},
		}, 0.015)
		if err != nil {
			logger.Printf(log, logger.Error, "creating network: %v", err)
			os.Exit(1)
		}
	}

	if !trained {
		logger.Printf(log, logger.Blank, "Training %d iterations", epochs)
		_, err := train.Fit(network, inputs, targets, epochs,
			train.WithLogger(log),
			train.WithCallbacks(
				train.NewSchedulerCallback(train.ExponentialDecay{Decay: decay}),
				train.ProgressLogger{Interval: 5000, Log: log},
			),
		)
		if err != nil {
			logger.Printf(log, logger.Error, "training: %v", err)
			os.Exit(1)
		}
	}

	t := timer.New(log)
	t.Start()
	if _, err := train.Evaluate(network, inputs, targets, tolerance, log); err != nil {
		logger.Printf(log, logger.Error, "evaluating: %v", err)
		os.Exit(1)
	}
	for _, x := range []float64{0.5, math.Pi, math.Pi / 2} {
		y, err := network.Predict([]float64{x})
		if err != nil {
			logger.Printf(log, logger.Error, "predicting: %v", err)
			os.Exit(1)
		}
		logger.Printf(log, logger.Info, "y = sin(%f). y = %f", x, y[0])
	}
	t.Stop()
	logger.Printf(log, logger.Info, "Tested network in %f seconds", t.Elapsed())

	if err := network.Save(modelFile); err != nil {
		logger.Printf(log, logger.Error, "saving network: %v", err)
		os.Exit(1)
	}
}
