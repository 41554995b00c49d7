package activations

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownKind is returned when a kind has no registered function pair.
var ErrUnknownKind = errors.New("unknown activation kind")

// Kind identifies an activation function. The numeric values are part of the
// serialized network format and must not be reordered.
type Kind int32

const (
	None         Kind = iota // identity, input layer only
	Sigmoid                  // 1 / (1 + e^-x)
	Linear                   // x
	Tanh                     // tanh(x)
	Swish                    // x * sigmoid(x)
	ReLU                     // max(0, x)
	LeakyReLU                // x if x > 0, else 0.01x
	Softplus                 // ln(1 + e^x)
	Gaussian                 // e^(-x^2)
	Softsign                 // x / (1 + |x|)
	BentIdentity             // (sqrt(x^2+1)-1)/2 + x
	Arctan                   // atan(x)
	Sinusoid                 // sin(x)
	HardSigmoid              // clamp(0.2x + 0.5, 0, 1)
	Mish                     // x * tanh(softplus(x))
)

var registry = [...]Func{
	None:         {Activate: identity, Derivative: one},
	Sigmoid:      {Activate: sigmoid, Derivative: sigmoidDerivative, DerivativeOf: Output},
	Linear:       {Activate: identity, Derivative: one},
	Tanh:         {Activate: math.Tanh, Derivative: tanhDerivative},
	Swish:        {Activate: swish, Derivative: swishDerivative},
	ReLU:         {Activate: relu, Derivative: reluDerivative},
	LeakyReLU:    {Activate: leakyReLU, Derivative: leakyReLUDerivative},
	Softplus:     {Activate: softplus, Derivative: sigmoid},
	Gaussian:     {Activate: gaussian, Derivative: gaussianDerivative},
	Softsign:     {Activate: softsign, Derivative: softsignDerivative},
	BentIdentity: {Activate: bentIdentity, Derivative: bentIdentityDerivative},
	Arctan:       {Activate: math.Atan, Derivative: arctanDerivative},
	Sinusoid:     {Activate: math.Sin, Derivative: math.Cos},
	HardSigmoid:  {Activate: hardSigmoid, Derivative: hardSigmoidDerivative},
	Mish:         {Activate: mish, Derivative: mishDerivative},
}

var names = [...]string{
	None:         "none",
	Sigmoid:      "sigmoid",
	Linear:       "linear",
	Tanh:         "tanh",
	Swish:        "swish",
	ReLU:         "relu",
	LeakyReLU:    "leaky_relu",
	Softplus:     "softplus",
	Gaussian:     "gaussian",
	Softsign:     "softsign",
	BentIdentity: "bent_identity",
	Arctan:       "arctan",
	Sinusoid:     "sinusoid",
	HardSigmoid:  "hard_sigmoid",
	Mish:         "mish",
}

// Valid reports whether k has a registered function pair.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(registry)
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return names[k]
}

// Lookup returns the function pair bound to k.
func Lookup(k Kind) (Func, error) {
	if !k.Valid() {
		return Func{}, fmt.Errorf("%w: %d", ErrUnknownKind, int32(k))
	}
	return registry[k], nil
}

// ParseKind resolves a name as returned by Kind.String. Matching ignores case
// and treats '-' like '_'.
func ParseKind(name string) (Kind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for k, n := range names {
		if n == key {
			return Kind(k), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every registered kind in code order.
func Kinds() []Kind {
	out := make([]Kind, len(registry))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
