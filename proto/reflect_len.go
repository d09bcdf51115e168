package proto

import "reflect"

// lenViaReflect is the fallback for sequenceLen's type switch: generated
// repeated message fields are typically []*T or []SomeValue for a concrete
// T the codec can't enumerate in advance, and map fields are typically
// map[K]V rather than the boxed map[interface{}]interface{}. reflect.Value
// is how the teacher's own properties/encode machinery (protobuf3) handles
// arbitrary generated struct shapes, so this mirrors that rather than
// inventing a bespoke mechanism.
func lenViaReflect(value interface{}) int {
	if value == nil {
		return 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return 0
}
