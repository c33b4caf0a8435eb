package relation

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Kind identifies the type of a cell value. The zero Kind marks an absent
// cell, so the zero Value is "no value here".
type Kind uint8

const (
	// KindNone marks an absent cell.
	KindNone Kind = iota
	// KindInt is a 64-bit signed integer cell.
	KindInt
	// KindFloat is an IEEE float64 cell.
	KindFloat
	// KindString is a string cell.
	KindString
)

// String returns the kind's schema name (int, double, string).
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "double"
	case KindString:
		return "string"
	default:
		return "none"
	}
}

// Value is one typed cell of a row: a three-arm sum over the allowed
// attribute types. The zero Value is absent. Values are immutable.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int builds an integer cell.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float builds a float cell.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Str builds a string cell.
func Str(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the cell's type; KindNone for an absent cell.
func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether the cell carries a value.
func (v Value) IsSet() bool { return v.kind != KindNone }

// AsInt returns the integer payload; valid only for KindInt.
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the float payload; valid only for KindFloat.
func (v Value) AsFloat() float64 { return v.f }

// AsStr returns the string payload; valid only for KindString.
func (v Value) AsStr() string { return v.s }

// Equal compares kind and payload. Absent cells are equal to each other.
// Floats compare with ==; the engine never produces NaN cells.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	default:
		return true
	}
}

// hash returns a stable 64-bit digest of kind and payload. Absent cells
// contribute a fixed constant so presence participates in row identity.
func (v Value) hash() uint64 {
	var buf [9]byte
	buf[0] = byte(v.kind)
	switch v.kind {
	case KindNone:
		return 0x9e3779b97f4a7c15
	case KindInt:
		binary.LittleEndian.PutUint64(buf[1:], uint64(v.i))
		return xxhash.Sum64(buf[:])
	case KindFloat:
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(v.f))
		return xxhash.Sum64(buf[:])
	default:
		d := xxhash.New()
		_, _ = d.Write(buf[:1])
		_, _ = d.WriteString(v.s)
		return d.Sum64()
	}
}

// String renders the payload; absent cells render as "null" to mirror the
// tabular printing format.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return v.s
	default:
		return "null"
	}
}
