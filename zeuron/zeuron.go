// Package zeuron is the public entry point: it re-exports the network,
// activation kinds, training helpers and logging sinks from the internal
// packages.
package zeuron

import (
	"io"

	"github.com/FlavioCFOliveira/zeuron/internal/activations"
	"github.com/FlavioCFOliveira/zeuron/internal/logger"
	"github.com/FlavioCFOliveira/zeuron/internal/net"
	"github.com/FlavioCFOliveira/zeuron/internal/train"
	"github.com/FlavioCFOliveira/zeuron/internal/weights"
)

// Re-export common types for easier access
type (
	Network    = net.Network
	LayerSpec  = net.LayerSpec
	Option     = net.Option
	Kind       = activations.Kind
	Logger     = logger.Logger
	Callback   = train.Callback
	Scheduler  = train.Scheduler
	FitOption  = train.Option
	Result     = train.Result
	Evaluation = train.Evaluation
	Dataset    = train.Dataset
	Job        = train.Job
)

// Activations
const (
	Sigmoid      = activations.Sigmoid
	Linear       = activations.Linear
	Tanh         = activations.Tanh
	Swish        = activations.Swish
	ReLU         = activations.ReLU
	LeakyReLU    = activations.LeakyReLU
	Softplus     = activations.Softplus
	Gaussian     = activations.Gaussian
	Softsign     = activations.Softsign
	BentIdentity = activations.BentIdentity
	Arctan       = activations.Arctan
	Sinusoid     = activations.Sinusoid
	HardSigmoid  = activations.HardSigmoid
	Mish         = activations.Mish
)

// Errors
var (
	ErrInvalidInputSize  = net.ErrInvalidInputSize
	ErrInvalidTargetSize = net.ErrInvalidTargetSize
	ErrInvalidTopology   = net.ErrInvalidTopology
	ErrUnknownKind       = activations.ErrUnknownKind
)

// ParseKind looks up an activation by name, e.g. "leaky_relu".
func ParseKind(name string) (Kind, error) {
	return activations.ParseKind(name)
}

// Network creation
func New(inputs int, specs []LayerSpec, learningRate float64, opts ...Option) (*Network, error) {
	return net.New(inputs, specs, learningRate, opts...)
}

// WithSeed makes weight initialization reproducible.
func WithSeed(seed uint64) Option {
	return net.WithSource(weights.NewUniformSource(seed))
}

func WithGradientClip(bound float64) Option {
	return net.WithGradientClip(bound)
}

// Persistence
func Load(filename string) (*Network, error) {
	return net.Load(filename)
}

func Unmarshal(data []byte) (*Network, error) {
	return net.Unmarshal(data)
}

// Training
func Fit(n *Network, inputs, targets [][]float64, epochs int, opts ...FitOption) (Result, error) {
	return train.Fit(n, inputs, targets, epochs, opts...)
}

func FitAll(jobs []Job) ([]Result, error) {
	return train.FitAll(jobs)
}

func Evaluate(n *Network, inputs, targets [][]float64, tolerance float64, log Logger) (Evaluation, error) {
	return train.Evaluate(n, inputs, targets, tolerance, log)
}

func WithCallbacks(cbs ...Callback) FitOption {
	return train.WithCallbacks(cbs...)
}

func WithLogger(l Logger) FitOption {
	return train.WithLogger(l)
}

func LoadCSV(filename string, targetCols []int, hasHeader bool) (*Dataset, error) {
	return train.LoadCSV(filename, targetCols, hasHeader)
}

// Callbacks
func ProgressLogger(interval int, log Logger) Callback {
	return train.ProgressLogger{Interval: interval, Log: log}
}

func EarlyStopping(patience int, minDelta float64, log Logger) *train.EarlyStopping {
	return train.NewEarlyStopping(patience, minDelta, log)
}

func ModelCheckpoint(filename string, log Logger) *train.ModelCheckpoint {
	return train.NewModelCheckpoint(filename, log)
}

func CSVLogger(filename string, append bool, log Logger) *train.CSVLogger {
	return train.NewCSVLogger(filename, append, log)
}

func SchedulerCallback(s Scheduler) Callback {
	return train.NewSchedulerCallback(s)
}

// Schedules
func ExponentialDecay(decay float64) Scheduler {
	return train.ExponentialDecay{Decay: decay}
}

func StepDecay(stepSize int, gamma float64) Scheduler {
	return train.StepDecay{StepSize: stepSize, Gamma: gamma}
}

func ReduceOnPlateau(factor float64, patience int, threshold, minRate float64) *train.ReduceOnPlateau {
	return train.NewReduceOnPlateau(factor, patience, threshold, minRate)
}

// Logging
func NewLogger(w io.Writer) Logger {
	return logger.New(w)
}

func DefaultLogger() Logger {
	return logger.Default()
}

var Discard = logger.Discard
