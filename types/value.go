package types

import (
	"strconv"
	"time"
)

// TimestampLayout is the textual form of timestamps used by the query service.
const TimestampLayout = "2006-01-02 15:04:05.000000000"

// Value is an immutable typed scalar. A null value keeps the type of its column.
type Value struct {
	t    Type
	null bool

	s  string
	i  int64
	f  float64
	b  bool
	ts time.Time
}

func StringValue(v string) Value {
	return Value{t: TypeString, s: v}
}

func IntegerValue(v int64) Value {
	return Value{t: TypeInteger, i: v}
}

func DoubleValue(v float64) Value {
	return Value{t: TypeDouble, f: v}
}

func BooleanValue(v bool) Value {
	return Value{t: TypeBoolean, b: v}
}

func TimestampValue(v time.Time) Value {
	return Value{t: TypeTimestamp, ts: v}
}

// NullValue returns a null of type t.
func NullValue(t Type) Value {
	return Value{t: t, null: true}
}

func (v Value) Type() Type {
	return v.t
}

func (v Value) IsNull() bool {
	return v.null
}

// Any returns the underlying Go value or nil for nulls.
func (v Value) Any() interface{} {
	if v.null {
		return nil
	}
	switch v.t {
	case TypeString:
		return v.s
	case TypeInteger:
		return v.i
	case TypeDouble:
		return v.f
	case TypeBoolean:
		return v.b
	case TypeTimestamp:
		return v.ts
	default:
		return nil
	}
}

func (v Value) String() string {
	if v.null {
		return "NULL"
	}
	switch v.t {
	case TypeString:
		return v.s
	case TypeInteger:
		return strconv.FormatInt(v.i, 10)
	case TypeDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	case TypeTimestamp:
		return v.ts.UTC().Format(TimestampLayout)
	default:
		return ""
	}
}
