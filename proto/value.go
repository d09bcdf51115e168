package proto

// Value is implemented by a structured message value the encoder can walk.
// Generated code projects its struct fields through Field/Oneof/Extension;
// nothing here requires reflection, matching the "direct field projection"
// approach DESIGN NOTES recommends for a statically typed reimplementation.
type Value interface {
	// Field returns the value of a non-oneof field by its target-language
	// identifier (FieldProps.Name), and whether the field is present at all
	// (a proto2 optional field with no value set reports ok == false; a
	// proto3 field reports its zero value with ok == true, since proto3 has
	// no explicit presence outside oneofs).
	Field(name string) (v interface{}, ok bool)

	// Oneof returns the active branch of the named oneof group: the
	// FieldProps.Name of the member field that is set and its payload. ok
	// is false if no branch of the group is set.
	Oneof(group string) (field string, payload interface{}, ok bool)

	// Extension looks up a proto2 extension value stored on this message by
	// its (module, key) pair; see §4.5 step 5 and the "extensions as open
	// mapping" design note.
	Extension(module, key string) (v interface{}, ok bool)
}

// wrapped adapts a raw scalar/enum/message payload into a single-field
// {Value: payload} message, for the value-wrapper inlining of §4.5 step 4.
type wrapped struct {
	payload interface{}
}

func (w wrapped) Field(name string) (interface{}, bool) {
	if name == "Value" {
		return w.payload, true
	}
	return nil, false
}

func (w wrapped) Oneof(string) (string, interface{}, bool)    { return "", nil, false }
func (w wrapped) Extension(string, string) (interface{}, bool) { return nil, false }

// Wrap boxes payload as a value-wrapper message, the runtime counterpart of
// the generator's compile-time wrapper detection (§4.9).
func Wrap(payload interface{}) Value { return wrapped{payload} }
