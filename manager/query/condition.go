package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand is the right hand side of a predicate: an integer literal or a
// column of the same relation.
type Operand struct {
	Column    string
	Literal   int64
	IsLiteral bool
}

func (o Operand) String() string {
	if o.IsLiteral {
		return strconv.FormatInt(o.Literal, 10)
	}
	return o.Column
}

type Predicate struct {
	Left    string
	Right   Operand
	Operand CondOperand
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Left, p.Operand, p.Right)
}

// ReferencesAggregate reports whether the left side names a derived
// aggregate column such as SUM(b).
func (p Predicate) ReferencesAggregate() bool {
	return strings.Contains(p.Left, "(")
}

func isDecimal(raw string) bool {
	if raw == "" {
		return false
	}
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

func parseOperand(raw string) (Operand, error) {
	if !isDecimal(raw) {
		return Operand{Column: raw}, nil
	}

	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Operand{}, fmt.Errorf("%w: literal `%s` out of range", ErrMalformedPredicate, raw)
	}
	return Operand{Literal: val, IsLiteral: true}, nil
}

func parsePredicate(tokens []string) (Predicate, error) {
	if len(tokens) != 3 {
		return Predicate{}, fmt.Errorf("%w: `%s`", ErrMalformedPredicate, strings.Join(tokens, " "))
	}

	op, opErr := ParseCondOperand(tokens[1])
	if opErr != nil {
		return Predicate{}, opErr
	}

	right, rightErr := parseOperand(tokens[2])
	if rightErr != nil {
		return Predicate{}, rightErr
	}

	return Predicate{Left: tokens[0], Right: right, Operand: op}, nil
}
