package expr

// OrderDirection is ASC or DESC.
type OrderDirection int

const (
	// OrderNone leaves the direction unspecified (database default).
	OrderNone OrderDirection = iota
	OrderAsc
	OrderDesc
)

func (d OrderDirection) String() string {
	switch d {
	case OrderAsc:
		return "ASC"
	case OrderDesc:
		return "DESC"
	default:
		return ""
	}
}

// Order is a single `ORDER BY` clause term, e.g. `age NUMERIC DESC`.
type Order struct{ base }

// OrderOption configures a single ordering term via the functional-options
// pattern the teacher uses throughout its dialect layer.
type OrderOption func(*orderConfig)

type orderConfig struct {
	numeric   bool
	collate   bool
	direction OrderDirection
}

// Numeric requests `NUMERIC` ordering (numeric-aware string comparison).
func Numeric() OrderOption { return func(c *orderConfig) { c.numeric = true } }

// Collate requests `COLLATE` ordering (locale-aware string comparison).
func Collate() OrderOption { return func(c *orderConfig) { c.collate = true } }

// Direction sets the sort direction.
func Direction(d OrderDirection) OrderOption { return func(c *orderConfig) { c.direction = d } }

// Random requests `ORDER BY RAND()` in place of a field ordering.
func Random() Order {
	return Order{base{text: "RAND()"}}
}

// NewOrder builds an ordering term over field with the given options.
func NewOrder(field Field, opts ...OrderOption) Order {
	cfg := orderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	text := field.Build()
	switch {
	case cfg.numeric:
		text += " NUMERIC"
	case cfg.collate:
		text += " COLLATE"
	}
	if dir := cfg.direction.String(); dir != "" {
		text += " " + dir
	}
	return Order{base{text: text, bindings: field.GetBindings(), errs: field.GetErrors()}}
}
