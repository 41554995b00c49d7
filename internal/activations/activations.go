// Package activations provides the activation functions a layer can be bound to.
package activations

import "math"

// Argument selects which cached neuron value a derivative consumes.
type Argument int

const (
	// PreActivation means the derivative takes the raw weighted sum plus bias.
	PreActivation Argument = iota
	// Output means the derivative takes the already activated value.
	Output
)

// Func is an activation function with its derivative.
type Func struct {
	Activate     func(x float64) float64
	Derivative   func(x float64) float64
	DerivativeOf Argument
}

// Slope evaluates the derivative for a neuron whose cached pre-activation
// sum is in and whose activated value is out.
func (f Func) Slope(in, out float64) float64 {
	if f.DerivativeOf == Output {
		return f.Derivative(out)
	}
	return f.Derivative(in)
}

// sigmoid computes 1 / (1 + e^-x)
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// sigmoidDerivative takes y = sigmoid(x), not x.
func sigmoidDerivative(y float64) float64 {
	return y * (1 - y)
}

func identity(x float64) float64 {
	return x
}

func one(float64) float64 {
	return 1
}

func tanhDerivative(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}

// swish computes x * sigmoid(x)
func swish(x float64) float64 {
	return x / (1 + math.Exp(-x))
}

func swishDerivative(x float64) float64 {
	s := sigmoid(x)
	return s + x*s*(1-s)
}

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func reluDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// leakySlope is the gradient kept for x <= 0.
const leakySlope = 0.01

func leakyReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return leakySlope * x
}

func leakyReLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return leakySlope
}

// softplus computes ln(1 + e^x)
func softplus(x float64) float64 {
	return math.Log(1 + math.Exp(x))
}

// gaussian computes e^(-x^2)
func gaussian(x float64) float64 {
	return math.Exp(-x * x)
}

func gaussianDerivative(x float64) float64 {
	return -2 * x * math.Exp(-x*x)
}

// softsign computes x / (1 + |x|)
func softsign(x float64) float64 {
	return x / (1 + math.Abs(x))
}

func softsignDerivative(x float64) float64 {
	d := 1 + math.Abs(x)
	return 1 / (d * d)
}

func bentIdentity(x float64) float64 {
	return (math.Sqrt(x*x+1)-1)/2 + x
}

func bentIdentityDerivative(x float64) float64 {
	return x/(2*math.Sqrt(x*x+1)) + 1
}

func arctanDerivative(x float64) float64 {
	return 1 / (1 + x*x)
}

// hardSigmoid computes clamp(0.2x + 0.5, 0, 1)
func hardSigmoid(x float64) float64 {
	return math.Max(0, math.Min(1, 0.2*x+0.5))
}

func hardSigmoidDerivative(x float64) float64 {
	if x > -2.5 && x < 2.5 {
		return 0.2
	}
	return 0
}

// mish computes x * tanh(softplus(x))
func mish(x float64) float64 {
	return x * math.Tanh(softplus(x))
}

func mishDerivative(x float64) float64 {
	t := math.Tanh(softplus(x))
	return t + x*sigmoid(x)*(1-t*t)
}
