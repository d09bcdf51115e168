// Package proto compiles per-message field tables and encodes structured
// values to the protocol buffer wire format. It is the runtime companion
// of the generator: the generator computes names and type metadata at
// codegen time, while this package does the per-value, per-call work of
// turning a Value into bytes.
package proto

import "github.com/protowire/protoc-gen-wire/wire"

// Kind identifies a field's declared scalar, enum, or message type. It
// mirrors descriptorpb.FieldDescriptorProto_Type closely enough to decide
// wire framing without importing the descriptor package into the hot path.
type Kind int

const (
	KindInt32 Kind = iota
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindBool
	KindEnum
	KindFixed32
	KindSfixed32
	KindFloat
	KindFixed64
	KindSfixed64
	KindDouble
	KindString
	KindBytes
	KindMessage
)

// WireType reports the wire type used to frame a single value of kind k.
func (k Kind) WireType() wire.Type {
	switch k {
	case KindInt32, KindInt64, KindUint32, KindUint64, KindSint32, KindSint64, KindBool, KindEnum:
		return wire.VarintType
	case KindFixed32, KindSfixed32, KindFloat:
		return wire.Fixed32Type
	case KindFixed64, KindSfixed64, KindDouble:
		return wire.Fixed64Type
	case KindString, KindBytes, KindMessage:
		return wire.BytesType
	}
	return wire.VarintType
}

// lengthDelimited reports whether k's wire type is length-delimited.
func (k Kind) lengthDelimited() bool {
	return k.WireType() == wire.BytesType
}

// FieldProps is the compiled, immutable description of a single message
// field. One is built per field when a MessageProps table is constructed,
// and is shared read-only across every encode call.
type FieldProps struct {
	Name string // target-language field identifier (v.Field(Name))
	Tag  wire.Number
	Kind Kind

	Repeated bool
	Required bool // proto2 required
	Optional bool // proto2 optional (explicit presence)
	Map      bool

	// Embedded is true when Kind == KindMessage and the submessage should be
	// recursively encoded rather than treated as an opaque scalar.
	Embedded bool

	// OneofGroup, when nonzero, is 1 + the index into MessageProps.Oneofs of
	// the oneof group this field belongs to. Zero (the natural default for a
	// field literal that never mentions it) means the field is not part of
	// any oneof.
	OneofGroup int

	// EncodedTag is the precomputed tag<<3|wiretype varint, cached so the
	// common case of a present, non-repeated field avoids recomputing it.
	EncodedTag []byte

	// EnumValues maps symbolic enum value names to their integer value, for
	// fields of Kind == KindEnum. Nil for non-enum fields.
	EnumValues map[string]int32

	// MessageType names the compiled MessageProps of the field's message
	// type, for Kind == KindMessage. Build does not resolve it; the caller
	// assigns it, so sibling messages can refer to each other's tables.
	MessageType *MessageProps

	// Wrapper, when MessageType is itself a single-field wrapper message per
	// the value-wrapper convention, makes the encoder box a raw scalar into
	// {Value: x} before recursing. See §4.5 step 4 / §4.9 of the design doc.
	Wrapper bool
}

// packed reports whether a repeated field with this Kind defaults to
// packed encoding (scalar numeric kinds; strings/bytes/messages never
// pack).
func (f *FieldProps) packed(proto3 bool, explicitPacked *bool) bool {
	if !f.Repeated || f.Map || f.Kind.lengthDelimited() {
		return false
	}
	if explicitPacked != nil {
		return *explicitPacked
	}
	return proto3
}

// Classification is the result of the field classifier (§4.3).
type Classification int

const (
	Normal Classification = iota
	Packed
	Embedded
)

// classify implements §4.3: given this field (and whether it was declared
// with packed framing, computed once at table-build time and stored in
// MessageProps.isPacked), decide how the encoder frames it.
func (f *FieldProps) classify(isPacked bool) Classification {
	switch {
	case f.Kind == KindMessage && f.Embedded:
		return Embedded
	case f.Repeated && isPacked:
		return Packed
	default:
		return Normal
	}
}

// OneofGroup describes one declared oneof on a message.
type OneofGroup struct {
	Name string
}

// MessageProps is the compiled, immutable description of a message type,
// built once per generated (or runtime-loaded) type and shared read-only
// across every encode call on values of that type.
type MessageProps struct {
	Name   string // struct/type name, for error messages
	Proto3 bool

	Fields []*FieldProps
	byTag  map[wire.Number]*FieldProps

	Oneofs []OneofGroup
	// oneofByName maps a oneof group's proto name to its index in Oneofs.
	oneofByName map[string]int

	// isPacked records, per field, whether §4.3's packed? predicate holds;
	// computed once at Build time from Proto3 and each field's own packed
	// option so Classify never re-derives it per value.
	isPacked map[*FieldProps]bool

	// Extensions holds the proto2 extension fields registered against this
	// message type via RegisterExtension.
	Extensions []ExtensionProps
}

// Build compiles a MessageProps from its syntax and ordered field list.
// explicitPacked maps a field's Name to its explicit `[packed=...]` option
// override; a field with no entry (or a nil pointer) gets the syntax
// default, packed in proto3 and unpacked in proto2.
func Build(name string, proto3 bool, fields []*FieldProps, oneofs []OneofGroup, explicitPacked map[string]*bool) *MessageProps {
	mp := &MessageProps{
		Name:        name,
		Proto3:      proto3,
		Fields:      fields,
		byTag:       make(map[wire.Number]*FieldProps, len(fields)),
		Oneofs:      oneofs,
		oneofByName: make(map[string]int, len(oneofs)),
		isPacked:    make(map[*FieldProps]bool, len(fields)),
	}
	for i, o := range oneofs {
		mp.oneofByName[o.Name] = i
	}
	for _, f := range fields {
		mp.byTag[f.Tag] = f
		f.EncodedTag = wire.EncodeTag(f.Tag, f.Kind.WireType())
		mp.isPacked[f] = f.packed(proto3, explicitPacked[f.Name])
	}
	return mp
}

// FieldByTag looks up a field by its wire tag number.
func (mp *MessageProps) FieldByTag(tag wire.Number) (*FieldProps, bool) {
	f, ok := mp.byTag[tag]
	return f, ok
}

// OneofIndex resolves a oneof group's declared name to its index.
func (mp *MessageProps) OneofIndex(name string) (int, bool) {
	i, ok := mp.oneofByName[name]
	return i, ok
}

// Classify exposes §4.3's field classifier using this table's precomputed
// packed-ness for f.
func (mp *MessageProps) Classify(f *FieldProps) Classification {
	return f.classify(mp.isPacked[f])
}

// ExtensionProps describes one proto2 extension field registered against a
// message type: Module and Key identify it the way Value.Extension looks it
// up, Props carries its wire shape exactly like any other field.
type ExtensionProps struct {
	Module string
	Key    string
	Props  *FieldProps
}

// RegisterExtension adds an extension field to mp, precomputing its wire tag
// the same way Build does for declared fields. Extensions are proto2-only
// (§4.5 step 5); calling this on a proto3 table is a programmer error the
// generator never produces.
func (mp *MessageProps) RegisterExtension(module, key string, f *FieldProps) {
	f.EncodedTag = wire.EncodeTag(f.Tag, f.Kind.WireType())
	mp.isPacked[f] = f.packed(mp.Proto3, nil)
	mp.Extensions = append(mp.Extensions, ExtensionProps{Module: module, Key: key, Props: f})
}
