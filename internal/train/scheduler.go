package train

import (
	"math"

	"github.com/FlavioCFOliveira/zeuron/internal/net"
)

// Scheduler picks the learning rate for an epoch.
type Scheduler interface {
	// Rate returns the rate for epoch, given the rate training began with
	// and the rate in use now.
	Rate(epoch int, initial, current float64) float64
}

// LossObserver is a Scheduler that reacts to the loss of each epoch.
type LossObserver interface {
	Observe(loss float64)
}

// ExponentialDecay yields initial * exp(-Decay * epoch).
type ExponentialDecay struct {
	Decay float64
}

func (s ExponentialDecay) Rate(epoch int, initial, current float64) float64 {
	return initial * math.Exp(-s.Decay*float64(epoch))
}

// StepDecay multiplies the initial rate by Gamma every StepSize epochs.
type StepDecay struct {
	StepSize int
	Gamma    float64
}

func (s StepDecay) Rate(epoch int, initial, current float64) float64 {
	if s.StepSize <= 0 {
		return initial
	}
	return initial * math.Pow(s.Gamma, float64(epoch/s.StepSize))
}

// ReduceOnPlateau multiplies the rate by Factor when the loss has not improved
// by more than Threshold for Patience epochs, then waits Cooldown epochs
// before watching again. The rate never drops below MinRate.
type ReduceOnPlateau struct {
	Factor    float64
	Patience  int
	Threshold float64
	Cooldown  int
	MinRate   float64

	bestLoss        float64
	numBadEpochs    int
	cooldownCounter int
	reduce          bool
}

func NewReduceOnPlateau(factor float64, patience int, threshold, minRate float64) *ReduceOnPlateau {
	return &ReduceOnPlateau{
		Factor:    factor,
		Patience:  patience,
		Threshold: threshold,
		MinRate:   minRate,
		bestLoss:  math.Inf(1),
	}
}

func (s *ReduceOnPlateau) Observe(loss float64) {
	if s.cooldownCounter > 0 {
		s.cooldownCounter--
		return
	}

	if loss < s.bestLoss-s.Threshold {
		s.bestLoss = loss
		s.numBadEpochs = 0
	} else {
		s.numBadEpochs++
	}

	if s.numBadEpochs >= s.Patience {
		s.reduce = true
		s.numBadEpochs = 0
		s.cooldownCounter = s.Cooldown
	}
}

func (s *ReduceOnPlateau) Rate(epoch int, initial, current float64) float64 {
	if !s.reduce {
		return current
	}
	s.reduce = false
	return math.Max(current*s.Factor, s.MinRate)
}

// SchedulerCallback sets Network.LearningRate from a Scheduler before every
// epoch.
type SchedulerCallback struct {
	BaseCallback
	Scheduler Scheduler

	initial float64
}

func NewSchedulerCallback(s Scheduler) *SchedulerCallback {
	return &SchedulerCallback{Scheduler: s}
}

func (c *SchedulerCallback) OnTrainBegin(n *net.Network) {
	c.initial = n.LearningRate
}

func (c *SchedulerCallback) OnEpochBegin(epoch int, n *net.Network) {
	n.LearningRate = c.Scheduler.Rate(epoch, c.initial, n.LearningRate)
}

func (c *SchedulerCallback) OnEpochEnd(epoch int, loss float64, n *net.Network) {
	if o, ok := c.Scheduler.(LossObserver); ok {
		o.Observe(loss)
	}
}
