package generator

// Context is the per-file accumulator the indexer threads through its
// depth-first walk of a file's messages and enums (§3 Context, §4.7 step 1).
// It is never shared across files; the driver holds the aggregate global
// map separately.
type Context struct {
	Package            string
	Namespace          []string
	ModulePrefix       string
	UsingValueWrappers bool
}

// Nested returns a copy of c with name appended to the namespace, for
// descending into a message's nested types (§4.7 step 2).
func (c Context) Nested(name string) Context {
	ns := make([]string, len(c.Namespace)+1)
	copy(ns, c.Namespace)
	ns[len(c.Namespace)] = name
	c.Namespace = ns
	return c
}
