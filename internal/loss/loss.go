// Package loss provides the error measures reported while training. The
// network's update rule always follows the squared error; these only score
// how far the outputs are from their targets.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Loss scores predictions against targets of the same length. Mismatched
// lengths panic; callers validate sizes first.
type Loss interface {
	Forward(yPred, yTrue []float64) float64
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (MSE) Forward(yPred, yTrue []float64) float64 {
	d := floats.Distance(yPred, yTrue, 2)
	return d * d / float64(len(yPred))
}

// L1Loss (Mean Absolute Error) loss.
type L1Loss struct{}

// Forward computes mean absolute error: (1/n) * sum(|y_pred - y_true|)
func (L1Loss) Forward(yPred, yTrue []float64) float64 {
	return floats.Distance(yPred, yTrue, 1) / float64(len(yPred))
}

// Huber loss for robust regression.
type Huber struct {
	Delta float64 // Threshold for quadratic/linear transition
}

// NewHuber creates a Huber loss with the given delta.
func NewHuber(delta float64) *Huber {
	return &Huber{Delta: delta}
}

// Forward computes Huber loss.
func (h Huber) Forward(yPred, yTrue []float64) float64 {
	if len(yPred) != len(yTrue) {
		panic("Huber: prediction and target must have same length")
	}

	var sum float64
	for i := range yPred {
		diff := math.Abs(yPred[i] - yTrue[i])
		if diff <= h.Delta {
			sum += 0.5 * diff * diff
		} else {
			sum += h.Delta * (diff - 0.5*h.Delta)
		}
	}
	return sum / float64(len(yPred))
}
