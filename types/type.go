package types

import "fmt"

// Type is a scalar kind of a result column.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeString
	TypeInteger
	TypeDouble
	TypeBoolean
	TypeTimestamp
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInteger:
		return "Integer"
	case TypeDouble:
		return "Double"
	case TypeBoolean:
		return "Boolean"
	case TypeTimestamp:
		return "Timestamp"
	case TypeUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Column describes one position of a result schema.
type Column struct {
	Name string
	Type Type
}

func (c Column) String() string {
	return c.Name + " " + c.Type.String()
}

// EqualColumns reports whether two schemas have the same names and types in the same order.
func EqualColumns(a, b []Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
