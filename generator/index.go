package generator

import "google.golang.org/protobuf/types/descriptorpb"

// BuildTypeIndex implements §4.7: walk every file's message and enum trees,
// producing both the global map (flattened, keyed by proto-qualified name)
// and the per-file map the driver reports in its response (§3 Context,
// "The driver accumulates a mapping from file.name to the file's type map").
func BuildTypeIndex(files []*descriptorpb.FileDescriptorProto, params *Parameters) (FileTypeMap, GlobalTypeMap) {
	fileMap := make(FileTypeMap, len(files))
	global := make(GlobalTypeMap)

	for _, f := range files {
		ctx := Context{
			Package:            f.GetPackage(),
			ModulePrefix:       modulePrefixOption(f.GetOptions()),
			UsingValueWrappers: params.UsingValueWrappers,
		}

		perFile := make(GlobalTypeMap)
		for _, msg := range f.GetMessageType() {
			walkMessage(ctx, msg, perFile)
		}
		for _, enum := range f.GetEnumType() {
			walkEnum(ctx, enum, perFile)
		}

		fileMap[f.GetName()] = perFile
		for k, v := range perFile {
			global[k] = v
		}
	}

	return fileMap, global
}

func walkMessage(ctx Context, desc *descriptorpb.DescriptorProto, out GlobalTypeMap) {
	name := desc.GetName()
	qualified := composeProtoQualifiedName(ctx, name)
	moduleName := composeModuleName(ctx, name)

	meta := &TypeMetadata{
		ModuleName: moduleName,
		TypeName:   moduleName,
		TypeSpec:   typeSpecOption(desc.GetOptions()),
	}
	if field, candidate := isWrapperCandidate(desc); candidate {
		if wrapped, scalar, ok := detectWrapper(ctx.UsingValueWrappers, name, field); ok {
			meta.Wrapper = true
			meta.WrapperTargetScalar = scalar
			meta.TypeName = wrapped
		}
	}
	out[qualified] = meta

	nested := ctx.Nested(name)
	for _, n := range desc.GetNestedType() {
		walkMessage(nested, n, out)
	}
	for _, e := range desc.GetEnumType() {
		walkEnum(nested, e, out)
	}
}

func walkEnum(ctx Context, desc *descriptorpb.EnumDescriptorProto, out GlobalTypeMap) {
	name := desc.GetName()
	qualified := composeProtoQualifiedName(ctx, name)
	moduleName := composeModuleName(ctx, name)
	out[qualified] = &TypeMetadata{ModuleName: moduleName, TypeName: moduleName}
}
