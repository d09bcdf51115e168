package generator

import (
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// uninterpretedOptionName renders a descriptorpb.UninterpretedOption's Name
// path the way protoc itself prints it in error messages and the way the
// indexer matches against it: extension parts wrapped in parens, dotted
// otherwise. This is the exact "extension mechanism on FileOptions" spec.md
// §6 describes — before the extending .proto is compiled against it, protoc
// leaves a file-level or message-level custom option exactly in this
// uninterpreted form.
func uninterpretedOptionName(opt *descriptorpb.UninterpretedOption) string {
	var parts []string
	for _, p := range opt.GetName() {
		name := p.GetNamePart()
		if p.GetIsExtension() {
			name = "(" + name + ")"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ".")
}

// uninterpretedOptionString returns an uninterpreted option's string-typed
// payload (protoc stores string-literal option values as raw bytes in
// StringValue).
func uninterpretedOptionString(opt *descriptorpb.UninterpretedOption) string {
	return string(opt.GetStringValue())
}

// modulePrefixOption implements §4.12: read FileOptions' `(wire.module_prefix)`
// custom option, empty if absent.
func modulePrefixOption(opts *descriptorpb.FileOptions) string {
	for _, opt := range opts.GetUninterpretedOption() {
		if uninterpretedOptionName(opt) == "(wire.module_prefix)" {
			return uninterpretedOptionString(opt)
		}
	}
	return ""
}

// typeSpecOption implements §4.12: read MessageOptions' `(wire.typespec)`
// custom option, empty if absent.
func typeSpecOption(opts *descriptorpb.MessageOptions) string {
	for _, opt := range opts.GetUninterpretedOption() {
		if uninterpretedOptionName(opt) == "(wire.typespec)" {
			return uninterpretedOptionString(opt)
		}
	}
	return ""
}
