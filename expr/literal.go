package expr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FormatLiteral renders value as SurrealQL literal text according to hint,
// for use by Raw. It implements the printing rules of spec.md §6: strings
// are single-quoted, datetimes are ISO-8601 with a trailing "Z", durations
// use the compact unit-suffixed form, record ids ("thing") are printed
// verbatim (unquoted) the same way a bare, non-captured record key would
// be, and anything else falls back to a best-effort textual form.
func FormatLiteral(hint string, v any) string {
	switch hint {
	case "datetime":
		if t, ok := v.(time.Time); ok {
			return quoteStrand(t.UTC().Format(time.RFC3339Nano))
		}
	case "duration":
		if d, ok := v.(time.Duration); ok {
			return formatDuration(d)
		}
	case "string", "strand":
		if s, ok := v.(string); ok {
			return quoteStrand(s)
		}
	case "thing":
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	switch t := v.(type) {
	case string:
		return quoteStrand(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "NONE"
	case time.Time:
		return quoteStrand(t.UTC().Format(time.RFC3339Nano))
	case time.Duration:
		return formatDuration(t)
	case uuid.UUID:
		return quoteStrand(t.String())
	case decimal.Decimal:
		return t.String() + "dec"
	case fmt.Stringer:
		return quoteStrand(t.String())
	default:
		return fmt.Sprintf("%v", t)
	}
}

func quoteStrand(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		if r == '\'' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "0ms"
	}
	units := []struct {
		suffix string
		unit   time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
		{"ms", time.Millisecond},
	}
	var b strings.Builder
	for _, u := range units {
		if d >= u.unit {
			n := d / u.unit
			d -= n * u.unit
			fmt.Fprintf(&b, "%d%s", n, u.suffix)
		}
	}
	if b.Len() == 0 {
		return "0ms"
	}
	return b.String()
}
