package expr

import (
	"regexp"
	"strings"
)

var plainIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// quoteIdent wraps an identifier in SurrealQL's backtick-quoted form unless
// it is already a bare, unambiguous identifier.
func quoteIdent(s string) string {
	if plainIdent.MatchString(s) {
		return s
	}
	return "`" + strings.ReplaceAll(s, "`", "\\`") + "`"
}

// Field is a reference to a schema field, dotted path, or graph edge step
// (e.g. "age", "address.city", "->purchased->product"). It never carries
// bindings or errors: referencing a field costs nothing.
type Field struct{ base }

// NewField builds a Field from a dotted path. Each path segment is quoted
// independently so a segment containing reserved characters does not need
// the caller to pre-escape it.
func NewField(path string) Field {
	segments := strings.Split(path, ".")
	for i, s := range segments {
		segments[i] = quoteIdent(s)
	}
	return Field{base{text: strings.Join(segments, ".")}}
}

// RawField builds a Field whose text is used verbatim, for graph-traversal arrows
// and other paths that are not plain dotted identifiers.
func RawField(text string) Field { return Field{base{text: text}} }

// Table is a reference to a table name.
type Table struct{ base }

// NewTable builds a Table reference, quoting the name if necessary.
func NewTable(name string) Table { return Table{base{text: quoteIdent(name)}} }

// Alias wraps any buildable expression with an `AS name` suffix.
type Alias struct{ base }

// As builds an Alias around expr, named name.
func As(expr Value, name string) Alias {
	return Alias{base{
		text:     expr.Build() + " AS " + quoteIdent(name),
		bindings: expr.GetBindings(),
		errs:     expr.GetErrors(),
	}}
}
