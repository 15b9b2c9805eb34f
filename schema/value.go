package schema

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

type ValueKind uint8

const (
	IntValue ValueKind = iota
	FloatValue
	NullValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "Int"
	case FloatValue:
		return "Float"
	case NullValue:
		return "Null"
	default:
		return ""
	}
}

// Value is a single cell of a relation. Stored data is always integer,
// FloatValue only appears as the result of AVG and NullValue only as the
// result of an aggregate over zero rows.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
}

func Int(v int64) Value {
	return Value{Kind: IntValue, Int: v}
}

func Float(v float64) Value {
	return Value{Kind: FloatValue, Float: v}
}

func Null() Value {
	return Value{Kind: NullValue}
}

func (v Value) IsNull() bool {
	return v.Kind == NullValue
}

func (v Value) AsFloat() float64 {
	if v.Kind == FloatValue {
		return v.Float
	}
	return float64(v.Int)
}

// Compare orders values numerically. NULL sorts before everything else.
func (v Value) Compare(other Value) int {

	if v.Kind == NullValue || other.Kind == NullValue {
		switch {
		case v.Kind == other.Kind:
			return 0
		case v.Kind == NullValue:
			return -1
		default:
			return 1
		}
	}

	if v.Kind == IntValue && other.Kind == IntValue {
		return cmp.Compare(v.Int, other.Int)
	}

	return cmp.Compare(v.AsFloat(), other.AsFloat())
}

func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case FloatValue:
		if math.IsInf(v.Float, 0) || math.IsNaN(v.Float) {
			return strconv.FormatFloat(v.Float, 'f', -1, 64)
		}
		formatted := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.Contains(formatted, ".") {
			formatted += ".0"
		}
		return formatted
	default:
		return "NULL"
	}
}

func IntsToValues(arr []int64) []Value {
	out := make([]Value, len(arr))
	for i, v := range arr {
		out[i] = Int(v)
	}
	return out
}
