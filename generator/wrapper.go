package generator

import (
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// scalarTagName maps a FieldDescriptorProto_Type to the proto scalar's tag
// name, used when the wrapped field is itself a scalar (condition 4 of
// §4.9 for the scalar case).
func scalarTagName(t descriptorpb.FieldDescriptorProto_Type) (string, bool) {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return "double", true
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return "float", true
	case descriptorpb.FieldDescriptorProto_TYPE_INT64:
		return "int64", true
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64:
		return "uint64", true
	case descriptorpb.FieldDescriptorProto_TYPE_INT32:
		return "int32", true
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		return "fixed64", true
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		return "fixed32", true
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "bool", true
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return "string", true
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return "bytes", true
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32:
		return "uint32", true
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return "sfixed32", true
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return "sfixed64", true
	case descriptorpb.FieldDescriptorProto_TYPE_SINT32:
		return "sint32", true
	case descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return "sint64", true
	}
	return "", false
}

// lastSegment returns the final "."-delimited component of a fully
// qualified proto type name (e.g. ".pkg.Outer.Inner" -> "Inner"), used for
// the message/enum case of §4.9 condition 4.
func lastSegment(typeName string) string {
	i := strings.LastIndex(typeName, ".")
	return typeName[i+1:]
}

// detectWrapper implements §4.9. field is the message's sole field (the
// caller has already checked the message has exactly one field named
// "value"); msgName is the message's simple (undotted) name.
func detectWrapper(usingValueWrappers bool, msgName string, field *descriptorpb.FieldDescriptorProto) (wrappedName string, scalarPayload bool, ok bool) {
	if !usingValueWrappers {
		return "", false, false
	}
	const suffix = "Value"
	if !strings.HasSuffix(msgName, suffix) || msgName == suffix {
		return "", false, false
	}
	base := strings.TrimSuffix(msgName, suffix)

	if tag, isScalar := scalarTagName(field.GetType()); isScalar {
		if strings.EqualFold(base, tag) {
			return tag, true, true
		}
		return "", false, false
	}

	// Message or enum payload: compare against the last segment of the
	// referenced type's fully qualified name.
	if field.GetType() == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE ||
		field.GetType() == descriptorpb.FieldDescriptorProto_TYPE_ENUM {
		target := lastSegment(field.GetTypeName())
		if strings.EqualFold(base, target) {
			return CamelCase(target), false, true
		}
	}
	return "", false, false
}

// isWrapperCandidate reports whether a message descriptor satisfies the
// structural preconditions of §4.9 conditions 2-3 (exactly one field named
// "value"), independent of the naming condition detectWrapper checks.
func isWrapperCandidate(desc *descriptorpb.DescriptorProto) (*descriptorpb.FieldDescriptorProto, bool) {
	if len(desc.GetField()) != 1 {
		return nil, false
	}
	f := desc.GetField()[0]
	if f.GetName() != "value" {
		return nil, false
	}
	return f, true
}
