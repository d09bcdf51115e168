package proto

import (
	"github.com/protowire/protoc-gen-wire/internal/errors"
	"github.com/protowire/protoc-gen-wire/wire"
)

// Marshal implements §4.5: encode v, whose shape mp describes, to the wire
// format. A scalar range violation or oneof inconsistency is fatal and
// discards whatever had been accumulated so far, per §7's propagation
// policy. A proto2 required field left unset is instead reported as a
// non-fatal error (§9 Open Questions: "fail loudly" rather than silently
// matching skip_field?'s behavior) — Marshal still returns the bytes it
// produced, alongside the error, the same contract the teacher's own
// errors.NonFatal documents for required-field validation.
func Marshal(v Value, mp *MessageProps) ([]byte, error) {
	var nf errors.NonFatal
	b, err := appendMessage(nil, v, mp, &nf)
	if err != nil {
		return nil, err
	}
	return b, nf.E
}

// oneofBranch is the resolved active value of one oneof group: which member
// field is set, and its payload.
type oneofBranch struct {
	field   string
	payload interface{}
}

// resolveOneofs implements §4.5 step 1.
func resolveOneofs(v Value, mp *MessageProps) (map[string]oneofBranch, error) {
	if len(mp.Oneofs) == 0 {
		return nil, nil
	}
	active := make(map[string]oneofBranch, len(mp.Oneofs))
	for _, group := range mp.Oneofs {
		field, payload, ok := v.Oneof(group.Name)
		if !ok {
			continue
		}
		fp, known := fieldByName(mp, field)
		if !known {
			return nil, &EncodeError{Struct: mp.Name, Group: group.Name, Branch: field, Reason: "no such field"}
		}
		idx, _ := mp.OneofIndex(group.Name)
		if fp.OneofGroup != idx+1 {
			return nil, &EncodeError{Struct: mp.Name, Group: group.Name, Branch: field, Reason: "field belongs to a different oneof group"}
		}
		active[field] = oneofBranch{field: field, payload: payload}
	}
	return active, nil
}

func fieldByName(mp *MessageProps, name string) (*FieldProps, bool) {
	for _, f := range mp.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// appendMessage implements §4.5 steps 2-5, appending directly to b (the
// "reverse-accumulate" trick the teacher's source uses is unnecessary once
// append is available, per the design notes; declaration order is
// preserved by construction here).
func appendMessage(b []byte, v Value, mp *MessageProps, nf *errors.NonFatal) ([]byte, error) {
	branches, err := resolveOneofs(v, mp)
	if err != nil {
		return nil, err
	}

	for _, f := range mp.Fields {
		var value interface{}
		var present, oneofSet bool
		if f.OneofGroup > 0 {
			branch, ok := branches[f.Name]
			if !ok {
				continue
			}
			value, present, oneofSet = branch.payload, true, true
		} else {
			value, present = v.Field(f.Name)
		}

		if f.Required && !present {
			nf.AppendRequiredNotSet(mp.Name + "." + f.Name)
			continue
		}

		if skipField(mp, f, value, present, oneofSet) {
			continue
		}

		b, err = appendField(b, mp, f, value, nf)
		if err != nil {
			return nil, err
		}
	}

	for _, ext := range mp.Extensions {
		value, ok := v.Extension(ext.Module, ext.Key)
		if !ok {
			continue
		}
		if skipField(mp, ext.Props, value, true, false) {
			continue
		}
		b, err = appendField(b, mp, ext.Props, value, nf)
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}

// appendField implements §4.5 step 4, dispatching on the field's
// classification.
func appendField(b []byte, mp *MessageProps, f *FieldProps, value interface{}, nf *errors.NonFatal) ([]byte, error) {
	class := mp.Classify(f)

	switch class {
	case Packed:
		// A packed record is length-delimited, whatever the element's own
		// wire type; f.EncodedTag carries the element wire type.
		b = wire.AppendTag(b, f.Tag, wire.BytesType)
		var payload []byte
		var err error
		for _, el := range elementsOf(value) {
			payload, err = encodeScalar(payload, mp.Name, f.Name, f, el)
			if err != nil {
				return nil, err
			}
		}
		b = wire.AppendVarint(b, uint64(len(payload)))
		return append(b, payload...), nil

	case Embedded:
		if f.Map {
			return appendMapField(b, mp, f, value, nf)
		}
		if f.Repeated {
			for _, el := range elementsOf(value) {
				var err error
				b, err = appendEmbedded(b, mp, f, el, nf)
				if err != nil {
					return nil, err
				}
			}
			return b, nil
		}
		return appendEmbedded(b, mp, f, value, nf)

	default: // Normal
		if f.Repeated {
			for _, el := range elementsOf(value) {
				b = append(b, f.EncodedTag...)
				var err error
				b, err = encodeScalar(b, mp.Name, f.Name, f, el)
				if err != nil {
					return nil, err
				}
			}
			return b, nil
		}
		b = append(b, f.EncodedTag...)
		return encodeScalar(b, mp.Name, f.Name, f, value)
	}
}

// appendEmbedded encodes a single embedded submessage value, applying
// wrapper inlining (§4.5 step 4 / §4.9) when the field's message type is a
// value wrapper and the payload isn't already shaped like one.
func appendEmbedded(b []byte, mp *MessageProps, f *FieldProps, value interface{}, nf *errors.NonFatal) ([]byte, error) {
	msgValue, ok := value.(Value)
	if !ok {
		if !f.Wrapper {
			return nil, &TypeEncodeError{Struct: mp.Name, Field: f.Name, Kind: f.Kind, Value: value, Reason: "value does not implement proto.Value"}
		}
		// A wrapper field's payload is ordinarily the raw scalar/enum value
		// itself (§4.9); box it into the synthetic {Value: payload} shape.
		msgValue = Wrap(value)
	}
	inner, err := appendMessage(nil, msgValue, f.MessageType, nf)
	if err != nil {
		return nil, err
	}
	b = append(b, f.EncodedTag...)
	b = wire.AppendVarint(b, uint64(len(inner)))
	return append(b, inner...), nil
}

// appendMapField implements §4.5 step 4's map case: each (k, v) pair is a
// synthetic {Key: k, Value: v} submessage, emitted as a repeated embedded
// field, with keys sorted for determinism (§8).
func appendMapField(b []byte, mp *MessageProps, f *FieldProps, value interface{}, nf *errors.NonFatal) ([]byte, error) {
	for _, entry := range sortedMapEntries(value) {
		inner, err := appendMessage(nil, mapEntryValue{entry}, f.MessageType, nf)
		if err != nil {
			return nil, err
		}
		b = append(b, f.EncodedTag...)
		b = wire.AppendVarint(b, uint64(len(inner)))
		b = append(b, inner...)
	}
	return b, nil
}

// mapEntryValue adapts a (key, value) pair to the synthetic two-field
// message type every proto map field compiles to.
type mapEntryValue struct{ entry mapEntry }

func (m mapEntryValue) Field(name string) (interface{}, bool) {
	switch name {
	case "Key":
		return m.entry.Key, true
	case "Value":
		return m.entry.Val, true
	}
	return nil, false
}
func (m mapEntryValue) Oneof(string) (string, interface{}, bool)     { return "", nil, false }
func (m mapEntryValue) Extension(string, string) (interface{}, bool) { return nil, false }
