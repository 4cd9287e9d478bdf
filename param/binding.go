// Package param implements the parameter-capture primitive shared by every
// builder: a value becomes a uniquely named placeholder plus an entry in a
// bindings list, and the counter that names placeholders is local to each
// statement so identical statements built independently produce identical
// text (SPEC_FULL.md §4.2, §5, §9).
package param

import "fmt"

// Binding is a single captured parameter: a generated name, the value it
// carries, and an optional type hint used by semantic-role coercions
// (e.g. "a datetime-like value was captured as a plain string").
type Binding struct {
	Name  string
	Value any
	Hint  string
}

// Placeholder returns the `$name` token a builder embeds in its fragment.
func (b Binding) Placeholder() string { return "$" + b.Name }

// Bindings is a per-statement counter plus the ordered list of captured
// bindings. It is a value type: copying it does not share the counter,
// which is what lets a sub-builder be "absorbed" into a parent with its
// own, already-advanced counter (see Absorb).
type Bindings struct {
	counter uint64
	list    []Binding
}

// Bind captures value under a freshly generated, monotonically increasing
// name and returns the binding. The name has the form `_param_XXXXXXXX`
// (an 8-digit zero-padded hex counter), matching SPEC_FULL.md §4.2.
func (b *Bindings) Bind(value any) Binding {
	return b.bindHinted(value, "")
}

// BindHinted is like Bind but additionally records a semantic-role hint
// (e.g. "datetime", "duration") describing how the raw value should be
// serialized on the wire.
func (b *Bindings) BindHinted(value any, hint string) Binding {
	return b.bindHinted(value, hint)
}

func (b *Bindings) bindHinted(value any, hint string) Binding {
	b.counter++
	bind := Binding{Name: fmt.Sprintf("_param_%08x", b.counter), Value: value, Hint: hint}
	b.list = append(b.list, bind)
	return bind
}

// List returns the bindings captured so far, in capture order.
func (b Bindings) List() []Binding {
	out := make([]Binding, len(b.list))
	copy(out, b.list)
	return out
}

// Len returns the number of bindings captured so far.
func (b Bindings) Len() int { return len(b.list) }

// Append appends already-built bindings verbatim (their names are assumed to
// already be unique within the receiver's statement, which Absorb guarantees
// when crossing a sub-builder boundary).
func (b *Bindings) Append(bindings ...Binding) {
	b.list = append(b.list, bindings...)
}

// Concat returns the bindings of a followed by the bindings of b, in order,
// per the monotone-accumulation law of SPEC_FULL.md §3/§8: composition never
// drops entries.
func Concat(a, b []Binding) []Binding {
	out := make([]Binding, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Absorb renumbers another statement's bindings into the receiver's own
// counter space and appends them, returning the rewritten bindings alongside
// a rename map from old placeholder to new placeholder. This is how a
// sub-builder (e.g. a subquery SELECT) gets "deep-copied" into a parent
// builder per SPEC_FULL.md §9: "deep-copying a sub-builder into a parent
// builder renumbers its bindings into the parent's counter space".
func (b *Bindings) Absorb(other []Binding) (rewritten []Binding, rename map[string]string) {
	rename = make(map[string]string, len(other))
	rewritten = make([]Binding, 0, len(other))
	for _, bind := range other {
		fresh := b.bindHinted(bind.Value, bind.Hint)
		rename[bind.Name] = fresh.Name
		rewritten = append(rewritten, fresh)
	}
	return rewritten, rename
}
