package expr

import (
	"fmt"

	"github.com/oyelowo/surrealorm/param"
)

var bareRecordKey = plainIdent

// RecordID is a reference of the form `table:id`. Per SPEC_FULL.md §9, an id
// that is already a bare identifier or integer is printed verbatim; anything
// else (a uuid, a string with punctuation, a composite key) is
// parameter-captured so its literal form never has to be escaped by hand.
type RecordID struct{ base }

// NewRecordID builds a RecordID, binding id against bindings when it is not
// safe to print verbatim.
func NewRecordID(bindings *param.Bindings, table string, id any) RecordID {
	idText, captured := recordKeyText(bindings, id)
	bl := []param.Binding(nil)
	if captured != nil {
		bl = []param.Binding{*captured}
	}
	return RecordID{base{text: quoteIdent(table) + ":" + idText, bindings: bl}}
}

func recordKeyText(bindings *param.Bindings, id any) (string, *param.Binding) {
	switch v := id.(type) {
	case int:
		return fmt.Sprintf("%d", v), nil
	case int64:
		return fmt.Sprintf("%d", v), nil
	case string:
		if bareRecordKey.MatchString(v) {
			return v, nil
		}
	}
	b := bindings.BindHinted(id, "thing")
	return b.Placeholder(), &b
}
