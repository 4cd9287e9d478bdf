// The remaining DEFINE statements of spec.md §4.4.4 - INDEX, EVENT, SCOPE,
// TOKEN, PARAM, ANALYZER, USER, FUNCTION - each follow the same
// accumulator contract as DefineTable/DefineField but with a much smaller
// clause set, matching the source's thin per-statement wrappers in
// _examples/original_source/query-builder/src/statements/define_*.rs.
package statement

import "strings"

// DefineIndex builds `DEFINE INDEX name ON TABLE table FIELDS f1, f2 ...`.
type DefineIndex struct {
	base
	name     string
	table    string
	fields   []string
	unique   bool
	search   string // a search analyzer clause, e.g. "SEARCH ANALYZER ascii BM25"
}

func NewDefineIndex(name, table string, fields ...string) *DefineIndex {
	return &DefineIndex{name: name, table: table, fields: fields}
}
func (d *DefineIndex) Unique() *DefineIndex          { d.unique = true; return d }
func (d *DefineIndex) Search(clause string) *DefineIndex { d.search = clause; return d }
func (d *DefineIndex) Errors() []error               { return append([]error(nil), d.errs...) }
func (d *DefineIndex) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE INDEX ")
	b.WriteString(d.name)
	b.WriteString(" ON TABLE ")
	b.WriteString(d.table)
	b.WriteString(" FIELDS ")
	b.WriteString(strings.Join(d.fields, ", "))
	if d.unique {
		b.WriteString(" UNIQUE")
	}
	if d.search != "" {
		b.WriteString(" ")
		b.WriteString(d.search)
	}
	return b.String() + ";"
}

// DefineEvent builds `DEFINE EVENT name ON TABLE table WHEN cond THEN then`.
type DefineEvent struct {
	base
	name, table, when, then string
}

func NewDefineEvent(name, table, when, then string) *DefineEvent {
	return &DefineEvent{name: name, table: table, when: when, then: then}
}
func (d *DefineEvent) Errors() []error { return append([]error(nil), d.errs...) }
func (d *DefineEvent) Build() string {
	return "DEFINE EVENT " + d.name + " ON TABLE " + d.table +
		" WHEN " + d.when + " THEN " + d.then + ";"
}

// DefineScope builds `DEFINE SCOPE name SESSION dur SIGNUP expr SIGNIN expr`.
type DefineScope struct {
	base
	name           string
	session        string
	signup, signin string
}

func NewDefineScope(name string) *DefineScope { return &DefineScope{name: name} }
func (d *DefineScope) Session(dur string) *DefineScope { d.session = dur; return d }
func (d *DefineScope) Signup(expr string) *DefineScope { d.signup = expr; return d }
func (d *DefineScope) Signin(expr string) *DefineScope { d.signin = expr; return d }
func (d *DefineScope) Errors() []error                 { return append([]error(nil), d.errs...) }
func (d *DefineScope) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE SCOPE ")
	b.WriteString(d.name)
	if d.session != "" {
		b.WriteString(" SESSION ")
		b.WriteString(d.session)
	}
	if d.signup != "" {
		b.WriteString(" SIGNUP ")
		b.WriteString(d.signup)
	}
	if d.signin != "" {
		b.WriteString(" SIGNIN ")
		b.WriteString(d.signin)
	}
	return b.String() + ";"
}

// DefineToken builds `DEFINE TOKEN name ON kind TYPE alg VALUE secret`.
type DefineToken struct {
	base
	name, on, alg, value string
}

func NewDefineToken(name, on, alg, value string) *DefineToken {
	return &DefineToken{name: name, on: on, alg: alg, value: value}
}
func (d *DefineToken) Errors() []error { return append([]error(nil), d.errs...) }
func (d *DefineToken) Build() string {
	return "DEFINE TOKEN " + d.name + " ON " + d.on + " TYPE " + d.alg + " VALUE " + d.value + ";"
}

// DefineParam builds `DEFINE PARAM $name VALUE value`.
type DefineParam struct {
	base
	name, value string
}

func NewDefineParam(name, value string) *DefineParam { return &DefineParam{name: name, value: value} }
func (d *DefineParam) Errors() []error                { return append([]error(nil), d.errs...) }
func (d *DefineParam) Build() string                  { return "DEFINE PARAM $" + d.name + " VALUE " + d.value + ";" }

// DefineAnalyzer builds `DEFINE ANALYZER name TOKENIZERS t1,t2 FILTERS f1,f2`.
type DefineAnalyzer struct {
	base
	name       string
	tokenizers []string
	filters    []string
}

func NewDefineAnalyzer(name string) *DefineAnalyzer { return &DefineAnalyzer{name: name} }
func (d *DefineAnalyzer) Tokenizers(t ...string) *DefineAnalyzer {
	d.tokenizers = append(d.tokenizers, t...)
	return d
}
func (d *DefineAnalyzer) Filters(f ...string) *DefineAnalyzer {
	d.filters = append(d.filters, f...)
	return d
}
func (d *DefineAnalyzer) Errors() []error { return append([]error(nil), d.errs...) }
func (d *DefineAnalyzer) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE ANALYZER ")
	b.WriteString(d.name)
	if len(d.tokenizers) > 0 {
		b.WriteString(" TOKENIZERS ")
		b.WriteString(strings.Join(d.tokenizers, ","))
	}
	if len(d.filters) > 0 {
		b.WriteString(" FILTERS ")
		b.WriteString(strings.Join(d.filters, ","))
	}
	return b.String() + ";"
}

// DefineUser builds `DEFINE USER name ON level PASSHASH hash ROLES r1,r2`.
type DefineUser struct {
	base
	name, level, passhash string
	roles                 []string
}

func NewDefineUser(name, level, passhash string) *DefineUser {
	return &DefineUser{name: name, level: level, passhash: passhash}
}
func (d *DefineUser) Roles(roles ...string) *DefineUser { d.roles = append(d.roles, roles...); return d }
func (d *DefineUser) Errors() []error                   { return append([]error(nil), d.errs...) }
func (d *DefineUser) Build() string {
	b := "DEFINE USER " + d.name + " ON " + d.level + " PASSHASH " + d.passhash
	if len(d.roles) > 0 {
		b += " ROLES " + strings.Join(d.roles, ",")
	}
	return b + ";"
}

// DefineFunction builds `DEFINE FUNCTION fn::name(args) { body };`.
type DefineFunction struct {
	base
	name string
	args []string // "name: type" pairs
	body string
}

func NewDefineFunction(name, body string, args ...string) *DefineFunction {
	return &DefineFunction{name: name, args: args, body: body}
}
func (d *DefineFunction) Errors() []error { return append([]error(nil), d.errs...) }
func (d *DefineFunction) Build() string {
	return "DEFINE FUNCTION fn::" + d.name + "(" + strings.Join(d.args, ", ") + ") {" + d.body + "};"
}
