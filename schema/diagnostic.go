package schema

import "fmt"

// Diagnostic is a structured compile-time error raised by Derive (spec.md
// §7): "Every misconfiguration is a structured diagnostic attached to the
// offending source location... None of these panic; all are returned so
// that multiple can be reported per compilation."
type Diagnostic struct {
	Table string
	Field string // empty for table-level diagnostics
	Msg   string
}

func (d Diagnostic) Error() string {
	if d.Field == "" {
		return fmt.Sprintf("schema: %s: %s", d.Table, d.Msg)
	}
	return fmt.Sprintf("schema: %s.%s: %s", d.Table, d.Field, d.Msg)
}

func tableDiag(table, format string, args ...any) Diagnostic {
	return Diagnostic{Table: table, Msg: fmt.Sprintf(format, args...)}
}

func fieldDiag(table, field, format string, args ...any) Diagnostic {
	return Diagnostic{Table: table, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Assertion is a structured fact Derive emits about a field, the Go
// analogue of the source's compile-time `static_assertions!` (SPEC_FULL.md
// §4.6 "Compile-time assertions"). AssertionKind distinguishes which
// invariant the assertion witnesses; compiler/gen lists each one as a
// comment in the generated file. Only Derive's Diagnostics become an
// `init()` guard there, which panics when the generated package is
// initialised, not at `go build`/`go vet` time.
type Assertion struct {
	Table string
	Field string
	Kind  AssertionKind
	// Detail is the human-readable statement of what is being asserted,
	// e.g. "field \"id\" coerces to record<user>".
	Detail string
}

// AssertionKind enumerates the families of compile-time assertion spec.md
// §4.6 describes.
type AssertionKind int

const (
	// AssertionCoercion witnesses that the declared Go-level type coerces
	// into the vocabulary value matching the field's FieldType.
	AssertionCoercion AssertionKind = iota
	// AssertionLinkTarget witnesses that a link/nest field's target type
	// implements the required capability and that its table name matches
	// the link annotation.
	AssertionLinkTarget
	// AssertionEdgeIdentity witnesses that an edge table's id/in/out
	// fields carry record types as required by spec.md §3.
	AssertionEdgeIdentity
)
