package proto

// isZeroScalar reports whether value equals kind's scalar default (0, 0.0,
// "", false), used by the proto3 emptiness policy (§4.4). Enum fields are
// checked through enumInt instead. Repeated/map emptiness (the "empty sequence"/"empty mapping"
// clauses) is decided by the caller from the value's length, not here.
func isZeroScalar(kind Kind, value interface{}) bool {
	switch v := value.(type) {
	case int32:
		return v == 0
	case int64:
		return v == 0
	case int:
		return v == 0
	case uint32:
		return v == 0
	case uint64:
		return v == 0
	case uint:
		return v == 0
	case bool:
		return !v
	case float32:
		return v == 0
	case float64:
		return v == 0
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	}
	_ = kind
	return false
}

// skipField implements §4.4: decide whether f should be omitted from the
// wire given its presence/value, the message's syntax, and whether f is a
// member of an active oneof branch (oneofSet is true exactly when the value
// was read out of the resolved oneof branch, never for an unset group).
func skipField(mp *MessageProps, f *FieldProps, value interface{}, present, oneofSet bool) bool {
	if f.Repeated || f.Map {
		return sequenceLen(value) == 0
	}
	if !mp.Proto3 {
		// proto2: an absent optional field is skipped; required fields and
		// set oneof members are never skipped regardless of value.
		return f.Optional && !present
	}
	// proto3.
	if !present {
		return true
	}
	if oneofSet {
		// A set oneof branch is emitted even at the scalar default.
		return false
	}
	if f.Kind == KindEnum {
		if n, ok := enumInt(value, f); ok && n == 0 {
			return true // enum-default suppression
		}
		return false
	}
	return isZeroScalar(f.Kind, value)
}

// sequenceLen reports the length of a repeated or map field's value. It
// accepts the shapes generated code or a dynamic Value implementation would
// plausibly use: a slice of any element type, or a map.
func sequenceLen(value interface{}) int {
	switch v := value.(type) {
	case []interface{}:
		return len(v)
	case []int32:
		return len(v)
	case []int64:
		return len(v)
	case []uint32:
		return len(v)
	case []uint64:
		return len(v)
	case []float32:
		return len(v)
	case []float64:
		return len(v)
	case []bool:
		return len(v)
	case []string:
		return len(v)
	case [][]byte:
		return len(v)
	case []Value:
		return len(v)
	case map[interface{}]interface{}:
		return len(v)
	}
	return lenViaReflect(value)
}

// enumInt resolves an enum field's value (an int32 or a symbolic string) to
// its integer, for the enum-default-suppression check, without surfacing an
// error here — an unresolvable symbol is reported by encodeScalar instead
// when the field is actually emitted.
func enumInt(value interface{}, f *FieldProps) (int32, bool) {
	switch v := value.(type) {
	case int32:
		return v, true
	case string:
		n, ok := f.EnumValues[v]
		return n, ok
	}
	return 0, false
}
