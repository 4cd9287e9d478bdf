package expr

import "github.com/oyelowo/surrealorm/param"

// Capture is the single coercion primitive behind every semantic-role
// wrapper (DurationLike, NumberLike, DatetimeLike, ...): if v is already an
// expression primitive (a field, function call, subquery, or another
// coerced value) it is re-wrapped verbatim with no new binding; otherwise it
// is parameter-captured against bindings under hint (SPEC_FULL.md §4.3).
func Capture(bindings *param.Bindings, hint string, v any) Value {
	if value, ok := v.(Value); ok {
		return base{text: value.Build(), bindings: value.GetBindings(), errs: value.GetErrors()}
	}
	b := bindings.BindHinted(v, hint)
	return base{text: b.Placeholder(), bindings: []param.Binding{b}}
}

// DurationLike coerces v into the duration role.
func DurationLike(bindings *param.Bindings, v any) Value { return Capture(bindings, "duration", v) }

// DatetimeLike coerces v into the datetime role.
func DatetimeLike(bindings *param.Bindings, v any) Value { return Capture(bindings, "datetime", v) }

// NumberLike coerces v into the number role (int, float, or decimal).
func NumberLike(bindings *param.Bindings, v any) Value { return Capture(bindings, "number", v) }

// StrandLike coerces v into the string role.
func StrandLike(bindings *param.Bindings, v any) Value { return Capture(bindings, "string", v) }

// GeometryLike coerces v into the geometry role.
func GeometryLike(bindings *param.Bindings, v any) Value { return Capture(bindings, "geometry", v) }

// ObjectLike coerces v into the object role.
func ObjectLike(bindings *param.Bindings, v any) Value { return Capture(bindings, "object", v) }

// ThingLike coerces v into the record-id role.
func ThingLike(bindings *param.Bindings, v any) Value { return Capture(bindings, "thing", v) }

// ArrayLike coerces v into the array role.
func ArrayLike(bindings *param.Bindings, v any) Value { return Capture(bindings, "array", v) }
