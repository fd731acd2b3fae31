package calc

import (
	"errors"
	"math/big"
)

// ErrFactorialNegative is returned by Factorial for negative input.
var ErrFactorialNegative = errors.New("factorial not defined for negative numbers")

// ExtendedEngine is the advanced capability set. It includes everything in
// Engine plus percentage and factorial. *Advanced satisfies it.
type ExtendedEngine interface {
	Engine
	Percentage(number, percent float64) float64
	Factorial(n int) (*big.Int, error)
}

// Advanced extends Calculator with percentage and factorial operations.
// It shares the embedded calculator's history sequence.
type Advanced struct {
	*Calculator
}

// NewAdvanced creates an Advanced calculator with the given name.
// An empty name defaults to "Calculator".
func NewAdvanced(name string) *Advanced {
	return &Advanced{Calculator: New(name)}
}

// Percentage returns percent% of number and records the operation.
func (a *Advanced) Percentage(number, percent float64) float64 {
	result := number * percent / 100
	a.record("%s%% of %s = %s", formatNum(percent), formatNum(number), formatNum(result))
	return result
}

// Factorial returns n! for non-negative n using iterative accumulation.
// The result is arbitrary precision, so large n does not overflow.
// Returns ErrFactorialNegative for negative input; nothing is recorded
// on failure.
func (a *Advanced) Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrFactorialNegative
	}

	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}

	a.record("%d! = %s", n, result.String())
	return result, nil
}
