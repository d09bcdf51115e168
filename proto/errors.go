package proto

import "fmt"

// TypeEncodeError reports a scalar value out of its declared range, or an
// enum symbol with no integer mapping (§7).
type TypeEncodeError struct {
	Struct string
	Field  string
	Kind   Kind
	Value  interface{}
	Reason string
}

func (e *TypeEncodeError) Error() string {
	return fmt.Sprintf("proto: %s.%s: cannot encode %v as %v: %s", e.Struct, e.Field, e.Value, e.Kind, e.Reason)
}

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindSint32:
		return "sint32"
	case KindSint64:
		return "sint64"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindFixed32:
		return "fixed32"
	case KindSfixed32:
		return "sfixed32"
	case KindFloat:
		return "float"
	case KindFixed64:
		return "fixed64"
	case KindSfixed64:
		return "sfixed64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindMessage:
		return "message"
	}
	return "unknown"
}

// EncodeError reports a oneof structural violation: a branch whose payload
// shape isn't a (field, value) pair the table recognizes, or whose field
// belongs to a different oneof group than the one it was read from (§7).
type EncodeError struct {
	Struct string
	Group  string
	Branch string
	Reason string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("proto: %s: oneof %q branch %q: %s", e.Struct, e.Group, e.Branch, e.Reason)
}
