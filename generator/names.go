package generator

import "strings"

// CamelCase converts a proto identifier segment (snake_case, or already
// mixed-case) to the target language's idiomatic type-name form. Adapted
// from the classic protoc-gen-go name mangler: an interior underscore
// followed by a lower-case letter is dropped and that letter capitalized;
// a leading underscore becomes a capital X; digits pass through as their
// own word boundary.
func CamelCase(s string) string {
	if s == "" {
		return ""
	}
	t := make([]byte, 0, len(s))
	i := 0
	if s[0] == '_' {
		t = append(t, 'X')
		i++
	}
	for ; i < len(s); i++ {
		c := s[i]
		if c == '_' && i+1 < len(s) && isASCIILower(s[i+1]) {
			continue
		}
		if isASCIIDigit(c) {
			t = append(t, c)
			continue
		}
		if isASCIILower(c) {
			c ^= ' '
		}
		t = append(t, c)
		for i+1 < len(s) && isASCIILower(s[i+1]) {
			i++
			t = append(t, s[i])
		}
	}
	return string(t)
}

func isASCIILower(c byte) bool { return 'a' <= c && c <= 'z' }
func isASCIIDigit(c byte) bool { return '0' <= c && c <= '9' }

// normalize implements §4.8's "apply a normalization rule" step: each
// dot-joined segment of a composed qualified path is CamelCased
// independently, so `my_pkg.outer_msg.inner` becomes `MyPkg.OuterMsg.Inner`.
func normalize(qualifiedDotPath string) string {
	segments := strings.Split(qualifiedDotPath, ".")
	for i, seg := range segments {
		segments[i] = CamelCase(seg)
	}
	return strings.Join(segments, ".")
}

// joinNonEmpty drops empty/absent components and joins the rest with ".",
// the component-dropping rule of §4.8's first paragraph.
func joinNonEmpty(components ...string) string {
	var kept []string
	for _, c := range components {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, ".")
}

// composeModuleName implements §4.8: module_prefix (falling back to
// package) ⧺ namespace ⧺ name, normalized.
func composeModuleName(ctx Context, name string) string {
	leading := ctx.ModulePrefix
	if leading == "" {
		leading = ctx.Package
	}
	raw := joinNonEmpty(append(append([]string{leading}, ctx.Namespace...), name)...)
	return normalize(raw)
}

// composeProtoQualifiedName builds the key used in the global type map: the
// dotted proto-qualified name, computed the same way as composeModuleName
// but using package (never module_prefix) and skipping normalization, per
// §4.8's final sentence.
func composeProtoQualifiedName(ctx Context, name string) string {
	return "." + joinNonEmpty(append(append([]string{ctx.Package}, ctx.Namespace...), name)...)
}
