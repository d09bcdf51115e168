package generator

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

// Generator is the driver: a pure transformation (Request, Parameters) ->
// Response (§4.10). One instance handles one plugin invocation and is
// discarded afterward.
type Generator struct {
	Request  *pluginpb.CodeGeneratorRequest
	Response *pluginpb.CodeGeneratorResponse

	Params *Parameters

	fileMap FileTypeMap
	global  GlobalTypeMap
}

// NewGenerator allocates a Generator around a decoded request, matching the
// teacher's NewGenerator constructor shape.
func NewGenerator(req *pluginpb.CodeGeneratorRequest) *Generator {
	return &Generator{
		Request:  req,
		Response: new(pluginpb.CodeGeneratorResponse),
	}
}

// Fail reports a fatal driver error and exits the process, the §7
// "Generator input error" path. Logging goes through glog rather than the
// teacher's bare log.Print, per the ambient stack.
func (g *Generator) Fail(msgs ...string) {
	glog.Exitf("protoc-gen-wire: error: %s", strings.Join(msgs, " "))
}

// Error reports a fatal driver error wrapping an underlying cause.
func (g *Generator) Error(err error, msgs ...string) {
	glog.Exitf("protoc-gen-wire: error: %s: %v", strings.Join(msgs, " "), err)
}

// Run executes the full driver pipeline: parse parameters, build the type
// index, generate a response file per requested file.
func (g *Generator) Run() {
	g.Params = ParseParameters(g.Request.GetParameter())
	glog.V(1).Infof("parameters: plugins=%v gen_descriptors=%v using_value_wrappers=%v",
		g.Params.Plugins, g.Params.GenDescriptors, g.Params.UsingValueWrappers)

	g.fileMap, g.global = BuildTypeIndex(g.Request.GetProtoFile(), g.Params)
	glog.V(1).Infof("indexed %d types across %d files", len(g.global), len(g.fileMap))

	g.GenerateAllFiles()
}

// GenerateAllFiles implements §4.10's driver loop and the Non-goals'
// minimal-output contract: one CodeGeneratorResponse_File per requested
// file, carrying a deterministic header and the file's computed
// TypeMetadata as a comment block. Rendering message/field source text is
// explicitly out of scope (spec.md §1 Non-goals); this is the evidence that
// the indexer and name composition ran end to end for that file.
func (g *Generator) GenerateAllFiles() {
	toGenerate := make(map[string]bool, len(g.Request.GetFileToGenerate()))
	for _, name := range g.Request.GetFileToGenerate() {
		toGenerate[name] = true
	}

	byName := make(map[string]*descriptorpb.FileDescriptorProto, len(g.Request.GetProtoFile()))
	for _, f := range g.Request.GetProtoFile() {
		byName[f.GetName()] = f
	}

	for _, name := range g.Request.GetFileToGenerate() {
		f, ok := byName[name]
		if !ok {
			g.Fail("could not find file in request:", name)
			return
		}
		content := g.renderFileHeader(f)
		g.Response.File = append(g.Response.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(goFileName(name)),
			Content: proto.String(content),
		})
	}
}

// goFileName derives the emitted file's name from a .proto path, mirroring
// the teacher's own *.pb.go convention.
func goFileName(protoName string) string {
	return strings.TrimSuffix(protoName, ".proto") + ".wire.go"
}

// renderFileHeader builds the deterministic header + TypeMetadata comment
// block for one generated file.
func (g *Generator) renderFileHeader(f *descriptorpb.FileDescriptorProto) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by protoc-gen-wire. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// source: %s\n\n", f.GetName())
	fmt.Fprintf(&b, "package %s\n\n", goPackageName(f))

	types := g.fileMap[f.GetName()]
	names := sortedKeys(types)
	b.WriteString("/*\n")
	fmt.Fprintf(&b, "TypeMetadata for %s:\n", f.GetName())
	for _, name := range names {
		meta := types[name]
		fmt.Fprintf(&b, "  %s => module_name=%s type_name=%s wrapper=%v typespec=%q\n",
			name, meta.ModuleName, meta.TypeName, meta.Wrapper, meta.TypeSpec)
	}
	b.WriteString("*/\n")
	return b.String()
}

// goPackageName picks the package clause for the generated file: the
// file's proto package, normalized, or "main" if it declares none.
func goPackageName(f *descriptorpb.FileDescriptorProto) string {
	if f.GetPackage() == "" {
		return "main"
	}
	return strings.ToLower(CamelCase(f.GetPackage()))
}

func sortedKeys(m GlobalTypeMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// FileTypeMap exposes the driver's computed per-file type index, for
// callers (and tests) that need it without re-running the indexer.
func (g *Generator) FileTypeMap() FileTypeMap { return g.fileMap }

// GlobalTypeMap exposes the driver's flattened global type index.
func (g *Generator) GlobalTypeMap() GlobalTypeMap { return g.global }
