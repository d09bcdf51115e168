// Package generator implements the protoc-gen-wire driver: parsing the
// plugin's command-line parameter string, indexing every message and enum
// declared in a CodeGeneratorRequest into a global type map, composing
// target-language identifiers, and detecting value-wrapper messages.
package generator

import "strings"

// Parameters is the parsed form of the comma-separated key=value list
// protoc passes as CodeGeneratorRequest.parameter (§4.6). Unknown keys are
// silently ignored, matching the upstream plugin convention of tolerating
// parameters meant for other plugins chained on the same invocation.
type Parameters struct {
	Plugins            map[string]bool
	GenDescriptors     bool
	UsingValueWrappers bool

	// Raw holds every key=value pair exactly as parsed, including ones with
	// no recognized effect, so a future option can be added without
	// reparsing the original string.
	Raw map[string]string
}

// ParseParameters implements §4.6.
func ParseParameters(parameter string) *Parameters {
	p := &Parameters{
		Plugins: make(map[string]bool),
		Raw:     make(map[string]string),
	}
	if parameter == "" {
		return p
	}
	for _, kv := range strings.Split(parameter, ",") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		p.Raw[k] = v

		switch k {
		case "plugins":
			for _, name := range strings.Split(v, "+") {
				if name != "" {
					p.Plugins[name] = true
				}
			}
		case "gen_descriptors":
			p.GenDescriptors = v == "true"
		case "using_value_wrappers":
			p.UsingValueWrappers = v == "true"
		}
	}
	return p
}
