package table

import (
	"cmp"
	"math"
	"strings"
)

// Kind is the type of a field value. Values of different kinds order by
// kind: number < string < bool.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumber
	KindString
	KindBool
)

// Value is a comparable primitive read from a record field.
type Value struct {
	kind Kind
	num  float64
	str  string
	flag bool
}

// Number wraps a numeric field. NaN is treated as missing.
func Number(v float64) Value {
	if math.IsNaN(v) {
		return Missing()
	}
	return Value{kind: KindNumber, num: v}
}

func String(v string) Value {
	return Value{kind: KindString, str: v}
}

func Bool(v bool) Value {
	return Value{kind: KindBool, flag: v}
}

// Missing marks an absent field. Missing values always sort last.
func Missing() Value {
	return Value{}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Compare orders two present values in natural ascending order.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case KindNumber:
		return cmp.Compare(a.num, b.num)
	case KindString:
		return strings.Compare(a.str, b.str)
	case KindBool:
		switch {
		case a.flag == b.flag:
			return 0
		case !a.flag:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

// Interface returns the value as a JSON-safe Go value. Missing and
// non-finite values become nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		if math.IsInf(v.num, 0) {
			return nil
		}
		return v.num
	case KindString:
		return v.str
	case KindBool:
		return v.flag
	default:
		return nil
	}
}
