// Package pagegen rewrites transpiled page sources so that every page
// exposes one canonical entry point:
//
//	func Page(alloc *mem.Arena, params map[string]string) render.Component
//
// Authors may instead write Page against a *page.Context, or with no
// parameters at all; pagegen renames such a function to PageImpl and
// synthesizes a canonical Page that builds the context and delegates.
// Sources already in canonical form, and shapes pagegen does not
// recognize, pass through untouched. The rewrite is idempotent.
package pagegen

import (
	"strings"
)

// Mode classifies the parameter convention detected on a page entry point.
type Mode int

const (
	// ModeLegacy is the canonical two-argument form; left unchanged.
	ModeLegacy Mode = iota

	// ModeContext takes a *page.Context; wrapped.
	ModeContext

	// ModeNone takes no parameters; wrapped with the default allocator.
	ModeNone

	// ModeUnsupported is any other non-empty list; left unchanged.
	ModeUnsupported

	// ModeAbsent means no entry point was found.
	ModeAbsent
)

// String returns the mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeContext:
		return "context"
	case ModeNone:
		return "none"
	case ModeUnsupported:
		return "unsupported"
	case ModeAbsent:
		return "absent"
	}
	return "unknown"
}

// Result is the outcome of normalizing one source text.
type Result struct {
	// Source is the (possibly rewritten) source text.
	Source string

	// Mode is the detected parameter convention.
	Mode Mode

	// Changed reports whether Source differs from the input.
	Changed bool
}

const (
	entryToken = "func Page"
	implName   = "PageImpl"

	arenaType   = "mem.Arena"
	rawMapType  = "map[string]string"
	contextType = "page.Context"

	memImport    = `"github.com/strata-dev/strata/pkg/mem"`
	pageImport   = `"github.com/strata-dev/strata/pkg/page"`
	renderImport = `"github.com/strata-dev/strata/pkg/render"`
)

// Normalize rewrites src so its page entry point has the canonical
// signature. Whenever an expected token cannot be found the input comes
// back unchanged; partial rewrites are never produced.
func Normalize(src string) Result {
	unchanged := Result{Source: src, Mode: ModeAbsent}

	nameEnd, ok := findEntry(src)
	if !ok {
		return unchanged
	}

	// The parameter list must open after the name, whitespace aside.
	open := skipSpace(src, nameEnd)
	if open >= len(src) || src[open] != '(' {
		return unchanged
	}

	close, ok := matchParen(src, open)
	if !ok {
		return unchanged
	}

	paramList := strings.TrimSpace(src[open+1 : close])
	mode := classify(paramList)

	switch mode {
	case ModeLegacy, ModeUnsupported:
		return Result{Source: src, Mode: mode}
	}

	bodyOpen := strings.IndexByte(src[close:], '{')
	if bodyOpen < 0 {
		return unchanged
	}
	bodyOpen += close

	var inject, delegate string
	switch mode {
	case ModeContext:
		ctxName, ok := contextParamName(paramList)
		if !ok {
			return unchanged
		}
		inject = "\n\talloc := " + ctxName + ".Arena()\n\t_ = alloc\n"
		// The wrapper always names its context ctx, whatever the
		// implementation calls its parameter.
		delegate = implName + "(ctx)"
	case ModeNone:
		inject = "\n\talloc := page.DefaultArena()\n\t_ = alloc\n"
		delegate = implName + "()"
	}

	var b strings.Builder
	b.Grow(len(src) + 256)
	b.WriteString(src[:nameEnd])
	b.WriteString("Impl")
	b.WriteString(src[nameEnd : bodyOpen+1])
	b.WriteString(inject)
	b.WriteString(src[bodyOpen+1:])
	if !strings.HasSuffix(src, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(wrapper(mode, delegate))

	out, ok := ensureImports(b.String())
	if !ok {
		return unchanged
	}

	return Result{Source: out, Mode: mode, Changed: true}
}

// wrapper builds the synthesized canonical entry point. The context is
// passed to the implementation explicitly; it is released on every exit
// path, including panics, via defer.
func wrapper(mode Mode, delegate string) string {
	var b strings.Builder
	b.WriteString("\n// Page is the canonical entry point synthesized by strata gen pages.\n")
	b.WriteString("// Do not edit; edit PageImpl instead.\n")
	b.WriteString("func Page(alloc *mem.Arena, params map[string]string) render.Component {\n")
	b.WriteString("\tctx := page.NewContext(alloc, params)\n")
	b.WriteString("\tdefer ctx.Release()\n")
	if mode == ModeNone {
		b.WriteString("\t_ = ctx\n")
	}
	b.WriteString("\treturn " + delegate + "\n")
	b.WriteString("}\n")
	return b.String()
}

// findEntry locates the entry token "func Page" at an identifier
// boundary. Returns the index just past the name. A renamed PageImpl no
// longer matches, which is what makes Normalize idempotent.
func findEntry(src string) (int, bool) {
	from := 0
	for {
		i := strings.Index(src[from:], entryToken)
		if i < 0 {
			return 0, false
		}
		i += from
		end := i + len(entryToken)

		before := i == 0 || !isIdentByte(src[i-1])
		after := end >= len(src) || !isIdentByte(src[end])
		if before && after {
			return end, true
		}
		from = end
	}
}

// matchParen finds the close matching the open paren at index open using
// depth counting. Depth starts at 1 on the opening delimiter.
func matchParen(src string, open int) (int, bool) {
	depth := 1
	for i := open + 1; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// classify decides the parameter convention from the trimmed list text.
// The legacy check runs first: the canonical signature mentions both the
// raw allocator and the raw map, and must always stay untouched.
func classify(paramList string) Mode {
	switch {
	case paramList == "":
		return ModeNone
	case strings.Contains(paramList, arenaType), strings.Contains(paramList, rawMapType):
		return ModeLegacy
	}
	if _, ok := contextParamName(paramList); ok {
		return ModeContext
	}
	return ModeUnsupported
}

// contextParamName accepts only a list that is exactly one named
// *page.Context parameter and returns its name. A list that merely
// mentions the context type among other parameters is rejected: the
// synthesized wrapper has nothing to bind the extra parameters to, so
// rewriting such a shape would break the call it emits.
func contextParamName(paramList string) (string, bool) {
	parts := strings.Fields(paramList)
	if len(parts) != 2 {
		return "", false
	}
	if parts[1] != "*"+contextType {
		return "", false
	}
	if !isIdent(parts[0]) {
		return "", false
	}
	return parts[0], true
}

// ensureImports guarantees the rewritten source imports the packages the
// synthesized wrapper references. Missing paths are inserted into the
// grouped import block; if the file has none, a block is added after the
// package clause.
func ensureImports(src string) (string, bool) {
	needed := []string{memImport, pageImport, renderImport}

	var missing []string
	for _, imp := range needed {
		if !strings.Contains(src, imp) {
			missing = append(missing, imp)
		}
	}
	if len(missing) == 0 {
		return src, true
	}

	if i := strings.Index(src, "import ("); i >= 0 {
		insert := i + len("import (")
		var b strings.Builder
		b.WriteString(src[:insert])
		for _, imp := range missing {
			b.WriteString("\n\t" + imp)
		}
		b.WriteString(src[insert:])
		return b.String(), true
	}

	// No grouped import block: add one right after the package clause.
	pkg := packageClause(src)
	if pkg < 0 {
		return "", false
	}
	end := strings.IndexByte(src[pkg:], '\n')
	if end < 0 {
		return "", false
	}
	insert := pkg + end + 1

	var b strings.Builder
	b.WriteString(src[:insert])
	b.WriteString("\nimport (\n")
	for _, imp := range missing {
		b.WriteString("\t" + imp + "\n")
	}
	b.WriteString(")\n")
	b.WriteString(src[insert:])
	return b.String(), true
}

// packageClause returns the index of the package clause, which must sit
// at the start of a line. Returns -1 if no clause is found.
func packageClause(src string) int {
	from := 0
	for {
		i := strings.Index(src[from:], "package ")
		if i < 0 {
			return -1
		}
		i += from
		if i == 0 || src[i-1] == '\n' {
			return i
		}
		from = i + 1
	}
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
		if i == 0 && s[i] >= '0' && s[i] <= '9' {
			return false
		}
	}
	return true
}
