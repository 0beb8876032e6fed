// Package calculator implements the four binary arithmetic operations
// served by the calculator endpoints.
package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrDivideByZero     = errors.New("cannot divide by zero")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrOutOfRange       = errors.New("result out of range")
)

type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// Operations lists every supported operation in display order.
var Operations = []Operation{Add, Subtract, Multiply, Divide}

// ParseOperation matches name case-insensitively.
func ParseOperation(name string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(name)))
	switch op {
	case Add, Subtract, Multiply, Divide:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Apply returns ErrOutOfRange when finite operands overflow to ±Inf.
func (o Operation) Apply(a, b float64) (float64, error) {
	r, err := o.apply(a, b)
	if err != nil {
		return 0, err
	}
	if math.IsInf(r, 0) {
		return 0, ErrOutOfRange
	}
	return r, nil
}

func (o Operation) apply(a, b float64) (float64, error) {
	switch o {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(o))
}

// Noun is the name reported in the operation field of GET responses.
func (o Operation) Noun() string {
	switch o {
	case Add:
		return "addition"
	case Subtract:
		return "subtraction"
	case Multiply:
		return "multiplication"
	case Divide:
		return "division"
	}
	return string(o)
}

func (o Operation) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	}
	return "?"
}

// Equation renders "10 + 5 = 15".
func (o Operation) Equation(a, b, result float64) string {
	return fmt.Sprintf("%s %s %s = %s", FormatNumber(a), o.Symbol(), FormatNumber(b), FormatNumber(result))
}

// Sentence renders the plain-text answer, e.g. "The sum of 10 and 5 is: 15".
func (o Operation) Sentence(a, b, result float64) string {
	x, y, r := FormatNumber(a), FormatNumber(b), FormatNumber(result)
	switch o {
	case Add:
		return fmt.Sprintf("The sum of %s and %s is: %s", x, y, r)
	case Subtract:
		return fmt.Sprintf("The difference of %s and %s is: %s", x, y, r)
	case Multiply:
		return fmt.Sprintf("The product of %s and %s is: %s", x, y, r)
	case Divide:
		return fmt.Sprintf("The division of %s by %s is: %s", x, y, r)
	}
	return o.Equation(a, b, result)
}

// ParseNumber accepts a finite decimal number. NaN and infinities are rejected.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// FormatNumber prints v without a trailing ".0" for whole numbers.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
