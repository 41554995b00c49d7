package train

import (
	"math"

	"github.com/FlavioCFOliveira/zeuron/internal/logger"
	"github.com/FlavioCFOliveira/zeuron/internal/net"
)

// Callback receives training events from Fit.
type Callback interface {
	OnTrainBegin(n *net.Network)
	OnTrainEnd(n *net.Network)
	OnEpochBegin(epoch int, n *net.Network)
	OnEpochEnd(epoch int, loss float64, n *net.Network)
}

// Stopper is a Callback that can end training early.
type Stopper interface {
	ShouldStop() bool
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (BaseCallback) OnTrainBegin(n *net.Network)                        {}
func (BaseCallback) OnTrainEnd(n *net.Network)                          {}
func (BaseCallback) OnEpochBegin(epoch int, n *net.Network)             {}
func (BaseCallback) OnEpochEnd(epoch int, loss float64, n *net.Network) {}

// ProgressLogger logs the epoch loss every Interval epochs.
type ProgressLogger struct {
	BaseCallback
	Interval int
	Log      logger.Logger
}

func (c ProgressLogger) OnEpochEnd(epoch int, loss float64, n *net.Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		logger.Printf(c.Log, logger.Blank, "Trained %d iterations, loss = %.6f", epoch, loss)
	}
}

// EarlyStopping stops training once the loss has not improved by more than
// MinDelta for Patience consecutive epochs.
type EarlyStopping struct {
	BaseCallback
	Patience int
	MinDelta float64
	Log      logger.Logger

	bestLoss     float64
	numBadEpochs int
	Stopped      bool
}

func NewEarlyStopping(patience int, minDelta float64, log logger.Logger) *EarlyStopping {
	return &EarlyStopping{
		Patience: patience,
		MinDelta: minDelta,
		Log:      log,
		bestLoss: math.Inf(1),
	}
}

func (c *EarlyStopping) OnEpochEnd(epoch int, loss float64, n *net.Network) {
	if loss < c.bestLoss-c.MinDelta {
		c.bestLoss = loss
		c.numBadEpochs = 0
	} else {
		c.numBadEpochs++
	}

	if c.numBadEpochs >= c.Patience {
		logger.Printf(c.Log, logger.Info, "Early stopping at epoch %d: loss %.6f did not improve for %d epochs", epoch, loss, c.Patience)
		c.Stopped = true
	}
}

func (c *EarlyStopping) ShouldStop() bool {
	return c.Stopped
}

// ModelCheckpoint saves the network whenever the epoch loss is the best so far.
type ModelCheckpoint struct {
	BaseCallback
	Filename string
	Log      logger.Logger

	// Err holds the last save failure, if any.
	Err error

	bestLoss float64
}

func NewModelCheckpoint(filename string, log logger.Logger) *ModelCheckpoint {
	return &ModelCheckpoint{
		Filename: filename,
		Log:      log,
		bestLoss: math.Inf(1),
	}
}

func (c *ModelCheckpoint) OnEpochEnd(epoch int, loss float64, n *net.Network) {
	if loss >= c.bestLoss {
		return
	}
	c.bestLoss = loss
	if err := n.Save(c.Filename); err != nil {
		c.Err = err
		logger.Printf(c.Log, logger.Error, "saving checkpoint: %v", err)
		return
	}
	logger.Printf(c.Log, logger.Info, "Checkpoint saved: loss %.6f is new best", loss)
}
