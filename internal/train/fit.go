// Package train drives a network over a dataset: epoch loops with callbacks,
// learning-rate schedules, evaluation against a tolerance, and parallel
// training of independent networks.
package train

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/FlavioCFOliveira/zeuron/internal/logger"
	"github.com/FlavioCFOliveira/zeuron/internal/loss"
	"github.com/FlavioCFOliveira/zeuron/internal/net"
	"github.com/FlavioCFOliveira/zeuron/internal/timer"
)

// Result summarizes a Fit run.
type Result struct {
	// Epochs is the number of epochs completed.
	Epochs int
	// Loss is the mean pattern loss of the last epoch, as measured by the
	// configured loss.
	Loss float64
	// Stopped reports whether a Stopper ended training early.
	Stopped bool
	// Elapsed is the wall-clock training time in seconds.
	Elapsed float64
}

// Option configures Fit.
type Option func(*config)

type config struct {
	callbacks []Callback
	log       logger.Logger
	loss      loss.Loss
}

// WithCallbacks appends callbacks, invoked in order.
func WithCallbacks(cbs ...Callback) Option {
	return func(c *config) {
		c.callbacks = append(c.callbacks, cbs...)
	}
}

// WithLoss sets the measure reported as the epoch loss. The default is MSE.
// Training itself always descends the squared error.
func WithLoss(l loss.Loss) Option {
	return func(c *config) {
		c.loss = l
	}
}

// WithLogger sets where Fit reports its summary line.
func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

func checkDataset(inputs, targets [][]float64) error {
	if len(inputs) != len(targets) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrDatasetMismatch, len(inputs), len(targets))
	}
	if len(inputs) == 0 {
		return ErrEmptyDataset
	}
	return nil
}

// Fit trains n for epochs passes over the patterns, one TrainPattern per
// pattern in order. The loss of an epoch is the mean of each pattern's loss
// measured on the outputs its update was computed from.
func Fit(n *net.Network, inputs, targets [][]float64, epochs int, opts ...Option) (Result, error) {
	cfg := config{loss: loss.MSE{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkDataset(inputs, targets); err != nil {
		return Result{}, err
	}

	var res Result
	losses := make([]float64, len(inputs))
	t := timer.New(cfg.log)
	t.Start()

	for _, cb := range cfg.callbacks {
		cb.OnTrainBegin(n)
	}
	for epoch := 0; epoch < epochs && !res.Stopped; epoch++ {
		for _, cb := range cfg.callbacks {
			cb.OnEpochBegin(epoch, n)
		}
		for i := range inputs {
			if err := n.Forward(inputs[i]); err != nil {
				return res, fmt.Errorf("epoch %d pattern %d: %w", epoch, i, err)
			}
			out := n.Outputs()
			if len(targets[i]) != len(out) {
				return res, fmt.Errorf("epoch %d pattern %d: %w: got %d values, output layer has %d neurons",
					epoch, i, net.ErrInvalidTargetSize, len(targets[i]), len(out))
			}
			losses[i] = cfg.loss.Forward(out, targets[i])
			if err := n.Backward(targets[i]); err != nil {
				return res, fmt.Errorf("epoch %d pattern %d: %w", epoch, i, err)
			}
		}
		res.Epochs = epoch + 1
		res.Loss = stat.Mean(losses, nil)

		for _, cb := range cfg.callbacks {
			cb.OnEpochEnd(epoch, res.Loss, n)
			if s, ok := cb.(Stopper); ok && s.ShouldStop() {
				res.Stopped = true
			}
		}
	}
	for _, cb := range cfg.callbacks {
		cb.OnTrainEnd(n)
	}

	t.Stop()
	res.Elapsed = t.Elapsed()
	logger.Printf(cfg.log, logger.Blank, "Trained %d iterations in %f seconds", res.Epochs, res.Elapsed)
	return res, nil
}

// Evaluation summarizes an Evaluate run.
type Evaluation struct {
	Patterns int
	// Within counts patterns whose every output is within tolerance.
	Within int
	// MaxDifference is the largest absolute output error seen.
	MaxDifference float64
}

// Passed reports whether every pattern was within tolerance.
func (e Evaluation) Passed() bool {
	return e.Within == e.Patterns
}

// Evaluate runs every pattern forward and compares each output against its
// target, logging one line per output.
func Evaluate(n *net.Network, inputs, targets [][]float64, tolerance float64, log logger.Logger) (Evaluation, error) {
	if err := checkDataset(inputs, targets); err != nil {
		return Evaluation{}, err
	}

	ev := Evaluation{Patterns: len(inputs)}
	for i := range inputs {
		out, err := n.Predict(inputs[i])
		if err != nil {
			return ev, fmt.Errorf("pattern %d: %w", i, err)
		}
		if len(out) != len(targets[i]) {
			return ev, fmt.Errorf("pattern %d: %w: got %d values, output layer has %d neurons", i, net.ErrInvalidTargetSize, len(targets[i]), len(out))
		}

		for j := range out {
			diff := math.Abs(out[j] - targets[i][j])
			verdict := "within"
			if diff > tolerance {
				verdict = "not within"
			}
			logger.Printf(log, logger.Info,
				"For input { %s } the network has a difference of: %f, output: %f, is %s tolerance of %f",
				formatValues(inputs[i]), diff, out[j], verdict, tolerance)
		}

		worst := floats.Distance(out, targets[i], math.Inf(1))
		if worst <= tolerance {
			ev.Within++
		}
		ev.MaxDifference = math.Max(ev.MaxDifference, worst)
	}
	return ev, nil
}

func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%f", v)
	}
	return strings.Join(parts, ", ")
}

// Job is one independent Fit run for FitAll.
type Job struct {
	Network *net.Network
	Inputs  [][]float64
	Targets [][]float64
	Epochs  int
	Options []Option
}

// FitAll trains every job's network on its own goroutine and waits for all of
// them. Jobs must not share a Network. Results are in job order; the error
// joins every job's failure.
func FitAll(jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			job := &jobs[i]
			res, err := Fit(job.Network, job.Inputs, job.Targets, job.Epochs, job.Options...)
			results[i] = res
			if err != nil {
				errs[i] = fmt.Errorf("job %d: %w", i, err)
			}
		}(i)
	}
	wg.Wait()

	return results, errors.Join(errs...)
}
