package proto

import "reflect"

// elementsOf normalizes a repeated field's value to a slice of per-element
// interfaces, so the encoder's packed/normal emission loop doesn't need a
// type switch per declared Go element type.
func elementsOf(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case []int32:
		return boxInt32s(v)
	case []int64:
		return boxInt64s(v)
	case []uint32:
		return boxUint32s(v)
	case []uint64:
		return boxUint64s(v)
	case []float32:
		return boxFloat32s(v)
	case []float64:
		return boxFloat64s(v)
	case []bool:
		return boxBools(v)
	case []string:
		return boxStrings(v)
	case [][]byte:
		return boxBytes(v)
	case []Value:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func boxInt32s(v []int32) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func boxInt64s(v []int64) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func boxUint32s(v []uint32) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func boxUint64s(v []uint64) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func boxFloat32s(v []float32) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func boxFloat64s(v []float64) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func boxBools(v []bool) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func boxStrings(v []string) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}

func boxBytes(v [][]byte) []interface{} {
	out := make([]interface{}, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}
