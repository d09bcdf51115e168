package proto

import (
	"math"

	"github.com/protowire/protoc-gen-wire/wire"
)

// encodeScalar implements §4.2: append the wire encoding of value (declared
// as kind) to b. Accepts both the exact-width Go type generated code would
// naturally produce (int32, uint32, float32, ...) and the wider int/int64/
// uint64 types a dynamically-built Value might hand in, range-checking the
// latter against the declared kind.
func encodeScalar(b []byte, structName, fieldName string, f *FieldProps, value interface{}) ([]byte, error) {
	fail := func(reason string) ([]byte, error) {
		return nil, &TypeEncodeError{Struct: structName, Field: fieldName, Kind: f.Kind, Value: value, Reason: reason}
	}

	asInt64 := func() (int64, bool) {
		switch v := value.(type) {
		case int32:
			return int64(v), true
		case int64:
			return v, true
		case int:
			return int64(v), true
		}
		return 0, false
	}
	asUint64 := func() (uint64, bool) {
		switch v := value.(type) {
		case uint32:
			return uint64(v), true
		case uint64:
			return v, true
		case uint:
			return uint64(v), true
		}
		return 0, false
	}

	switch f.Kind {
	case KindInt32:
		n, ok := asInt64()
		if !ok {
			return fail("value is not an integer")
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return fail("out of int32 range")
		}
		return wire.AppendVarint(b, uint64(n)), nil

	case KindInt64:
		n, ok := asInt64()
		if !ok {
			return fail("value is not an integer")
		}
		return wire.AppendVarint(b, uint64(n)), nil

	case KindUint32:
		if n, ok := asUint64(); ok {
			if n > math.MaxUint32 {
				return fail("out of uint32 range")
			}
			return wire.AppendVarint(b, n), nil
		}
		if n, ok := asInt64(); ok {
			if n < 0 || n > math.MaxUint32 {
				return fail("out of uint32 range")
			}
			return wire.AppendVarint(b, uint64(n)), nil
		}
		return fail("value is not an integer")

	case KindUint64:
		if n, ok := asUint64(); ok {
			return wire.AppendVarint(b, n), nil
		}
		if n, ok := asInt64(); ok {
			if n < 0 {
				return fail("negative value for uint64")
			}
			return wire.AppendVarint(b, uint64(n)), nil
		}
		return fail("value is not an integer")

	case KindSint32:
		n, ok := asInt64()
		if !ok {
			return fail("value is not an integer")
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return fail("out of sint32 range")
		}
		return wire.AppendVarint(b, uint64(wire.EncodeZigzag32(int32(n)))), nil

	case KindSint64:
		n, ok := asInt64()
		if !ok {
			return fail("value is not an integer")
		}
		return wire.AppendVarint(b, wire.EncodeZigzag64(n)), nil

	case KindBool:
		v, ok := value.(bool)
		if !ok {
			return fail("value is not a bool")
		}
		if v {
			return wire.AppendVarint(b, 1), nil
		}
		return wire.AppendVarint(b, 0), nil

	case KindEnum:
		switch v := value.(type) {
		case int32:
			return wire.AppendVarint(b, uint64(int64(v))), nil
		case string:
			n, ok := f.EnumValues[v]
			if !ok {
				return fail("unknown enum symbol " + v)
			}
			return wire.AppendVarint(b, uint64(int64(n))), nil
		default:
			return fail("value is not an enum symbol or int32")
		}

	case KindFixed32:
		if n, ok := asUint64(); ok {
			if n > math.MaxUint32 {
				return fail("out of fixed32 range")
			}
			return wire.AppendFixed32(b, uint32(n)), nil
		}
		return fail("value is not an integer")

	case KindSfixed32:
		n, ok := asInt64()
		if !ok {
			return fail("value is not an integer")
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return fail("out of sfixed32 range")
		}
		return wire.AppendFixed32(b, uint32(int32(n))), nil

	case KindFloat:
		switch v := value.(type) {
		case float32:
			return wire.AppendFloat32(b, v), nil
		case float64:
			return wire.AppendFloat32(b, float32(v)), nil
		}
		return fail("value is not a float")

	case KindFixed64:
		n, ok := asUint64()
		if !ok {
			return fail("value is not an integer")
		}
		return wire.AppendFixed64(b, n), nil

	case KindSfixed64:
		n, ok := asInt64()
		if !ok {
			return fail("value is not an integer")
		}
		return wire.AppendFixed64(b, uint64(n)), nil

	case KindDouble:
		switch v := value.(type) {
		case float32:
			return wire.AppendFloat64(b, float64(v)), nil
		case float64:
			return wire.AppendFloat64(b, v), nil
		}
		return fail("value is not a float")

	case KindString:
		v, ok := value.(string)
		if !ok {
			return fail("value is not a string")
		}
		b = wire.AppendVarint(b, uint64(len(v)))
		return append(b, v...), nil

	case KindBytes:
		v, ok := value.([]byte)
		if !ok {
			return fail("value is not []byte")
		}
		b = wire.AppendVarint(b, uint64(len(v)))
		return append(b, v...), nil
	}
	return fail("unsupported kind")
}
