package kv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// KeyValue is a typed log field.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

// FieldType indicates type info about the KeyValue.
type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType
	endType
)

const nilPtr = "<nil>"

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	StringsType:  "[]string",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (ft FieldType) String() string {
	if ft < 0 || ft >= endType {
		return "unknown"
	}

	return fieldTypeNames[ft]
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

func (f KeyValue) StringValue() string {
	return f.vstr
}

func (f KeyValue) IntValue() int {
	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	return f.vint
}

func (f KeyValue) BoolValue() bool {
	return f.vint != 0
}

func (f KeyValue) DurationValue() time.Duration {
	return time.Duration(f.vint)
}

func (f KeyValue) StringsValue() []string {
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.([]string)

	return val
}

func (f KeyValue) ErrorValue() error {
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.(error)

	return val
}

func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	default:
		return f.vany
	}
}

func (f KeyValue) Stringer() fmt.Stringer {
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.(fmt.Stringer)

	return val
}

// String renders the value of the field. It panics on InvalidType.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil {
			return nilPtr
		}

		return f.ErrorValue().Error()
	case AnyType:
		if f.vany == nil {
			return nilPtr
		}
		if v := reflect.ValueOf(f.vany); v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return nilPtr
			}

			return v.Type().String() + "(" + fmt.Sprint(v.Elem()) + ")"
		}

		return fmt.Sprint(f.vany)
	case StringerType:
		if s := f.Stringer(); s != nil {
			return s.String()
		}

		return nilPtr
	default:
		panic(fmt.Sprintf("kv: unknown field type %d", f.ftype))
	}
}

func Int(k string, v int) KeyValue {
	return KeyValue{
		ftype: IntType,
		key:   k,
		vint:  int64(v),
	}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{
		ftype: Int64Type,
		key:   k,
		vint:  v,
	}
}

func String(k, v string) KeyValue {
	return KeyValue{
		ftype: StringType,
		key:   k,
		vstr:  v,
	}
}

func Bool(key string, value bool) KeyValue {
	var vint int64
	if value {
		vint = 1
	}

	return KeyValue{
		ftype: BoolType,
		key:   key,
		vint:  vint,
	}
}

func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{
		ftype: DurationType,
		key:   key,
		vint:  value.Nanoseconds(),
	}
}

func Strings(key string, value []string) KeyValue {
	return KeyValue{
		ftype: StringsType,
		key:   key,
		vany:  value,
	}
}

func NamedError(key string, value error) KeyValue {
	return KeyValue{
		ftype: ErrorType,
		key:   key,
		vany:  value,
	}
}

func Error(value error) KeyValue {
	return NamedError("error", value)
}

func Any(key string, value interface{}) KeyValue {
	return KeyValue{
		ftype: AnyType,
		key:   key,
		vany:  value,
	}
}

func Stringer(key string, value fmt.Stringer) KeyValue {
	return KeyValue{
		ftype: StringerType,
		key:   key,
		vany:  value,
	}
}

// Latency creates KeyValue "latency": time.Since(start)
func Latency(start time.Time) KeyValue {
	return Duration("latency", time.Since(start))
}
