// Package function holds the fixed set of numeric functions a component can
// be bound to.
package function

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUnknownFunction is returned by Parse for tags outside the registry.
var ErrUnknownFunction = errors.New("unknown component")

// Function is one of the registered numeric functions of an integer.
type Function int

const (
	// G computes 1.5 * x^2.
	G Function = iota + 1
	// H computes sqrt(x), NaN for negative x.
	H
	// F computes x^3.
	F
)

var tags = map[Function]string{
	G: "g",
	H: "h",
	F: "f",
}

// Parse resolves a type tag to its function.
func Parse(tag string) (Function, error) {
	for fn, t := range tags {
		if t == tag {
			return fn, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFunction, tag)
}

// ParseArg parses a decimal 32-bit argument.
func ParseArg(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// All returns every registered function sorted by tag.
func All() []Function {
	return []Function{F, G, H}
}

// Tag returns the short name used on the command line.
func (fn Function) Tag() string {
	if t, ok := tags[fn]; ok {
		return t
	}
	return fmt.Sprintf("Function(%d)", int(fn))
}

func (fn Function) String() string {
	return fn.Tag()
}

// Evaluate applies the function to x.
//
// Squaring and cubing are done in 32-bit integer arithmetic before the
// conversion to float64, so large arguments wrap the way a C int would.
func (fn Function) Evaluate(x int32) float64 {
	switch fn {
	case G:
		return float64(x*x) * 1.5
	case H:
		return math.Sqrt(float64(x))
	case F:
		return float64(x * x * x)
	default:
		panic(fmt.Sprintf("function: evaluate on unregistered %s", fn))
	}
}
