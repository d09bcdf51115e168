package generator

// TypeMetadata is the per-type record the indexer produces once and never
// rewrites (§3 TypeMetadata).
type TypeMetadata struct {
	// ModuleName is the canonical composed target identifier for the type.
	ModuleName string

	// TypeName is the alias used at reference sites: equal to ModuleName
	// unless value-wrapper inlining (§4.9) reassigns it to the wrapped
	// payload's identifier.
	TypeName string

	Wrapper             bool
	WrapperTargetScalar bool

	// TypeSpec carries a message's `typespec` custom option (§6) verbatim,
	// empty when the message declares none.
	TypeSpec string
}

// GlobalTypeMap is keyed by fully-qualified proto name (leading ".", as the
// descriptor schema itself uses) to the type's compiled metadata.
type GlobalTypeMap map[string]*TypeMetadata

// FileTypeMap is the per-invocation accumulator the driver builds: each
// indexed file's name (every file in the request, not only the ones to
// generate) to the subset of GlobalTypeMap it declares (§4.7
// step 4). It is scoped to a single driver run, never process-wide (§9
// "Global state").
type FileTypeMap map[string]GlobalTypeMap
