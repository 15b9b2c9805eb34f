package query

import "fmt"

type CondOperand byte

const (
	EQ CondOperand = iota
	GT
	LT
	GE
	LE
)

func (c CondOperand) String() string {
	switch c {
	case EQ:
		return "="
	case GT:
		return ">"
	case LT:
		return "<"
	case GE:
		return ">="
	case LE:
		return "<="
	default:
		panic(fmt.Sprintf("unknown operand %d", c))
	}
}

func ParseCondOperand(raw string) (CondOperand, error) {
	switch raw {
	case "=":
		return EQ, nil
	case ">":
		return GT, nil
	case "<":
		return LT, nil
	case ">=":
		return GE, nil
	case "<=":
		return LE, nil
	default:
		return EQ, fmt.Errorf("%w `%s`", ErrUnknownOperator, raw)
	}
}

// Combinator joins the two predicates of a WHERE clause.
type Combinator byte

const (
	NoCombinator Combinator = iota
	And
	Or
)

func (c Combinator) String() string {
	switch c {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return ""
	}
}
