package statement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oyelowo/surrealorm/statement"
)

func TestDefineIndexUnique(t *testing.T) {
	idx := statement.NewDefineIndex("user_email", "user", "email").Unique()
	assert.Equal(t, "DEFINE INDEX user_email ON TABLE user FIELDS email UNIQUE;", idx.Build())
}

func TestDefineIndexSearch(t *testing.T) {
	idx := statement.NewDefineIndex("post_title", "post", "title").Search("SEARCH ANALYZER ascii BM25")
	assert.Equal(t, "DEFINE INDEX post_title ON TABLE post FIELDS title SEARCH ANALYZER ascii BM25;", idx.Build())
}

func TestDefineEvent(t *testing.T) {
	ev := statement.NewDefineEvent("user_created", "user", "$event = \"CREATE\"", "(CREATE log SET user = $value.id)")
	assert.Equal(t,
		"DEFINE EVENT user_created ON TABLE user WHEN $event = \"CREATE\" THEN (CREATE log SET user = $value.id);",
		ev.Build())
}

func TestDefineScope(t *testing.T) {
	sc := statement.NewDefineScope("account").
		Session("24h").
		Signup("(CREATE user SET email = $email, pass = crypto::argon2::generate($pass))").
		Signin("(SELECT * FROM user WHERE email = $email AND crypto::argon2::compare(pass, $pass))")
	assert.Equal(t,
		"DEFINE SCOPE account SESSION 24h "+
			"SIGNUP (CREATE user SET email = $email, pass = crypto::argon2::generate($pass)) "+
			"SIGNIN (SELECT * FROM user WHERE email = $email AND crypto::argon2::compare(pass, $pass));",
		sc.Build())
}

func TestDefineToken(t *testing.T) {
	tok := statement.NewDefineToken("auth0", "SCOPE account", "RS256", "\"secret\"")
	assert.Equal(t, "DEFINE TOKEN auth0 ON SCOPE account TYPE RS256 VALUE \"secret\";", tok.Build())
}

func TestDefineParam(t *testing.T) {
	p := statement.NewDefineParam("max_page_size", "100")
	assert.Equal(t, "DEFINE PARAM $max_page_size VALUE 100;", p.Build())
}

func TestDefineAnalyzer(t *testing.T) {
	a := statement.NewDefineAnalyzer("ascii").Tokenizers("class").Filters("lowercase", "ascii")
	assert.Equal(t, "DEFINE ANALYZER ascii TOKENIZERS class FILTERS lowercase,ascii;", a.Build())
}

func TestDefineUser(t *testing.T) {
	u := statement.NewDefineUser("admin", "ROOT", "abcdef").Roles("OWNER")
	assert.Equal(t, "DEFINE USER admin ON ROOT PASSHASH abcdef ROLES OWNER;", u.Build())
}

func TestDefineFunction(t *testing.T) {
	f := statement.NewDefineFunction("greet", "RETURN \"hello \" + $name;", "$name: string")
	assert.Equal(t, "DEFINE FUNCTION fn::greet($name: string) {RETURN \"hello \" + $name;};", f.Build())
}
