package generator

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"testing"
)

func TestIsWrapperCandidate(t *testing.T) {
	desc := &descriptorpb.DescriptorProto{
		Field: []*descriptorpb.FieldDescriptorProto{
			{Name: proto.String("value"), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
		},
	}
	f, ok := isWrapperCandidate(desc)
	if !ok || f.GetName() != "value" {
		t.Fatalf("isWrapperCandidate = %v, %v", f, ok)
	}

	multi := &descriptorpb.DescriptorProto{
		Field: []*descriptorpb.FieldDescriptorProto{
			{Name: proto.String("value"), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
			{Name: proto.String("extra"), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
		},
	}
	if _, ok := isWrapperCandidate(multi); ok {
		t.Error("isWrapperCandidate(two fields) = true, want false")
	}

	wrongName := &descriptorpb.DescriptorProto{
		Field: []*descriptorpb.FieldDescriptorProto{
			{Name: proto.String("val"), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
		},
	}
	if _, ok := isWrapperCandidate(wrongName); ok {
		t.Error("isWrapperCandidate(field named val) = true, want false")
	}
}

func TestDetectWrapperScalarMatch(t *testing.T) {
	field := &descriptorpb.FieldDescriptorProto{
		Name: proto.String("value"),
		Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
	}
	wrapped, scalar, ok := detectWrapper(true, "Int32Value", field)
	if !ok || !scalar || wrapped != "int32" {
		t.Errorf("detectWrapper = %q, %v, %v, want int32, true, true", wrapped, scalar, ok)
	}
}

func TestDetectWrapperDisabledFeatureFlag(t *testing.T) {
	field := &descriptorpb.FieldDescriptorProto{
		Name: proto.String("value"),
		Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
	}
	if _, _, ok := detectWrapper(false, "Int32Value", field); ok {
		t.Error("detectWrapper with UsingValueWrappers=false returned ok=true")
	}
}

func TestDetectWrapperNameMismatch(t *testing.T) {
	field := &descriptorpb.FieldDescriptorProto{
		Name: proto.String("value"),
		Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
	}
	if _, _, ok := detectWrapper(true, "StringValue", field); ok {
		t.Error("detectWrapper(StringValue wrapping int32) returned ok=true, want false")
	}
}

func TestDetectWrapperMessagePayload(t *testing.T) {
	field := &descriptorpb.FieldDescriptorProto{
		Name:     proto.String("value"),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_ENUM.Enum(),
		TypeName: proto.String(".pkg.Month"),
	}
	wrapped, scalar, ok := detectWrapper(true, "MonthValue", field)
	if !ok || scalar || wrapped != "Month" {
		t.Errorf("detectWrapper = %q, %v, %v, want Month, false, true", wrapped, scalar, ok)
	}
}

func TestDetectWrapperSuffixOnlyNameRejected(t *testing.T) {
	field := &descriptorpb.FieldDescriptorProto{
		Name: proto.String("value"),
		Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
	if _, _, ok := detectWrapper(true, "Value", field); ok {
		t.Error("detectWrapper(message literally named Value) returned ok=true, want false")
	}
}
