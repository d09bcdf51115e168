// protoc-gen-wire is a plugin for the Google protocol buffer compiler. Run
// it by building this program and putting it in your path with the name
//
//	protoc-gen-wire
//
// then invoke it via
//
//	protoc --wire_out=output_directory input_directory/file.proto
//
// protoc always launches the plugin with no command-line arguments,
// feeding it a serialized CodeGeneratorRequest on stdin and reading a
// CodeGeneratorResponse back from stdout; --version and --help are
// provided only for a human running the binary directly.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/protowire/protoc-gen-wire/generator"
)

const version = "0.1.0"

func main() {
	if len(os.Args) == 1 {
		runPlugin()
		return
	}

	root := &cobra.Command{
		Use:     "protoc-gen-wire",
		Short:   "protoc plugin generating protocol buffer wire-format bindings",
		Version: version,
		// With arguments present (--version, --help, or anything else), defer
		// to cobra's own parsing rather than the plugin's stdin/stdout
		// protocol; protoc itself never passes arguments.
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetVersionTemplate("protoc-gen-wire {{.Version}}\n")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runPlugin implements the binary protoc plugin protocol (§6): read a
// CodeGeneratorRequest from stdin, run the driver, write the
// CodeGeneratorResponse to stdout.
func runPlugin() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		glog.Exitf("protoc-gen-wire: reading request: %v", err)
	}

	req := new(pluginpb.CodeGeneratorRequest)
	if err := proto.Unmarshal(data, req); err != nil {
		glog.Exitf("protoc-gen-wire: parsing request: %v", err)
	}

	g := generator.NewGenerator(req)
	g.Run()

	out, err := proto.Marshal(g.Response)
	if err != nil {
		glog.Exitf("protoc-gen-wire: marshaling response: %v", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		glog.Exitf("protoc-gen-wire: writing response: %v", err)
	}
}
