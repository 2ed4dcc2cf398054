// Package rpn evaluates arithmetic expressions over [radix.Number] written in
// prefix (Polish) notation, for example "* 10 + 1.23 4.56".
package rpn

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/govalues/radix"
)

// ErrSyntax is returned for malformed expressions.
var ErrSyntax = errs.Class("syntax error")

// Evaluator evaluates expressions in a fixed numeral system.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	sys   radix.System
	scale int
}

// New returns an evaluator that parses operands in sys and truncates every
// quotient to scale digits after the radix point.
func New(sys radix.System, scale int) *Evaluator {
	return &Evaluator{sys: sys, scale: scale}
}

// System returns the numeral system of the operands.
func (e *Evaluator) System() radix.System {
	return e.sys
}

// Evaluate computes the value of the expression in input.
// Tokens are separated by white space. The supported operators are
// "+", "-", "*" and "/".
func (e *Evaluator) Evaluate(input string) (radix.Number, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return radix.Number{}, err
	}
	stack, err := e.processTokens(tokens)
	if err != nil {
		return radix.Number{}, err
	}
	if len(stack) != 1 {
		return radix.Number{}, ErrSyntax.New("evaluating %q: post-processed stack contains %v, expected exactly one item", input, stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, ErrSyntax.New("parsing %q: no tokens", input)
	}
	return tokens, nil
}

func (e *Evaluator) processTokens(tokens []string) ([]radix.Number, error) {
	stack := make([]radix.Number, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = e.processOperator(stack, token)
		default:
			stack, err = e.processOperand(stack, token)
		}
		if err != nil {
			return nil, err
		}
	}
	return stack, nil
}

func (e *Evaluator) processOperator(stack []radix.Number, token string) ([]radix.Number, error) {
	if len(stack) < 2 {
		return nil, ErrSyntax.New("processing token %q: not enough operands", token)
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result radix.Number
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right, e.scale)
	}
	if err != nil {
		return nil, err
	}
	return append(stack, result), nil
}

func (e *Evaluator) processOperand(stack []radix.Number, token string) ([]radix.Number, error) {
	n, err := radix.Parse(token, e.sys)
	if err != nil {
		return nil, err
	}
	return append(stack, n), nil
}
