// Package calc implements the calculator engine: basic arithmetic operations
// with an append-only history of human-readable records, plus an advanced
// operation set (percentage, factorial).
//
// Each instance owns its own history; there is no shared state between
// instances. Operations are synchronous and single-threaded. Failed
// operations (division by zero, negative square root) leave the history
// untouched.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors for the validated preconditions. Messages match the
// operation's user-facing failure text verbatim.
var (
	// ErrDivideByZero is returned by Divide when the divisor is zero.
	ErrDivideByZero = errors.New("cannot divide by zero")

	// ErrNegativeSqrt is returned by Sqrt for negative input.
	ErrNegativeSqrt = errors.New("cannot calculate square root of negative number")
)

// Engine is the basic arithmetic capability set. *Calculator satisfies it.
type Engine interface {
	Add(a, b float64) float64
	Subtract(a, b float64) float64
	Multiply(a, b float64) float64
	Divide(a, b float64) (float64, error)
	Power(base, exponent float64) float64
	Sqrt(number float64) (float64, error)
	History() []string
	ClearHistory()
}

// Calculator performs basic arithmetic and records every successful
// operation as a human-readable history entry.
type Calculator struct {
	name    string
	history []string
}

// New creates a Calculator with the given name.
// An empty name defaults to "Calculator".
func New(name string) *Calculator {
	if name == "" {
		name = "Calculator"
	}
	return &Calculator{name: name}
}

// Name returns the calculator's identifying name.
func (c *Calculator) Name() string {
	return c.name
}

// Add returns a+b and records the operation.
func (c *Calculator) Add(a, b float64) float64 {
	result := a + b
	c.record("%s + %s = %s", formatNum(a), formatNum(b), formatNum(result))
	return result
}

// Subtract returns a-b and records the operation.
func (c *Calculator) Subtract(a, b float64) float64 {
	result := a - b
	c.record("%s - %s = %s", formatNum(a), formatNum(b), formatNum(result))
	return result
}

// Multiply returns a*b and records the operation.
func (c *Calculator) Multiply(a, b float64) float64 {
	result := a * b
	c.record("%s * %s = %s", formatNum(a), formatNum(b), formatNum(result))
	return result
}

// Divide returns a/b as floating point.
// Returns ErrDivideByZero when b is zero; nothing is recorded on failure.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	result := a / b
	c.record("%s / %s = %s", formatNum(a), formatNum(b), formatNum(result))
	return result, nil
}

// Power returns base raised to exponent. Integer and real exponents are
// both accepted.
func (c *Calculator) Power(base, exponent float64) float64 {
	result := math.Pow(base, exponent)
	c.record("%s ^ %s = %s", formatNum(base), formatNum(exponent), formatNum(result))
	return result
}

// Sqrt returns the square root of number.
// Returns ErrNegativeSqrt for negative input; nothing is recorded on failure.
func (c *Calculator) Sqrt(number float64) (float64, error) {
	if number < 0 {
		return 0, ErrNegativeSqrt
	}
	result := math.Sqrt(number)
	c.record("√%s = %s", formatNum(number), formatNum(result))
	return result, nil
}

// History returns a snapshot of the operation history in insertion order.
// Mutating the returned slice does not affect the calculator.
func (c *Calculator) History() []string {
	snapshot := make([]string, len(c.history))
	copy(snapshot, c.history)
	return snapshot
}

// ClearHistory empties the operation history.
func (c *Calculator) ClearHistory() {
	c.history = c.history[:0]
}

// record appends a formatted entry to the history.
func (c *Calculator) record(format string, args ...any) {
	c.history = append(c.history, fmt.Sprintf(format, args...))
}

// formatNum renders a float in its shortest exact form ("5", "2.5"),
// matching how history records display whole numbers without a decimal part.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
