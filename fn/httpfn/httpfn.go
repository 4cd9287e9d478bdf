// Package httpfn implements the `http::*` function catalog of spec.md
// §4.5: head, get, delete, post, put, patch, each with an optional
// request-body object and an optional headers object. Grounded
// semantically on
// _examples/original_source/query-builder/src/functions/http.rs.
package httpfn

import "github.com/oyelowo/surrealorm/expr"

func call(name string, args ...expr.Value) expr.Function {
	return expr.NewFunction("http::"+name, args...)
}

// Head issues `http::head(url[, headers])`.
func Head(url expr.Value, headers ...expr.Value) expr.Function {
	return call("head", append([]expr.Value{url}, headers...)...)
}

// Get issues `http::get(url[, headers])`.
func Get(url expr.Value, headers ...expr.Value) expr.Function {
	return call("get", append([]expr.Value{url}, headers...)...)
}

// Delete issues `http::delete(url[, headers])`.
func Delete(url expr.Value, headers ...expr.Value) expr.Function {
	return call("delete", append([]expr.Value{url}, headers...)...)
}

// Post issues `http::post(url, body[, headers])`.
func Post(url, body expr.Value, headers ...expr.Value) expr.Function {
	return call("post", append([]expr.Value{url, body}, headers...)...)
}

// Put issues `http::put(url, body[, headers])`.
func Put(url, body expr.Value, headers ...expr.Value) expr.Function {
	return call("put", append([]expr.Value{url, body}, headers...)...)
}

// Patch issues `http::patch(url, body[, headers])`.
func Patch(url, body expr.Value, headers ...expr.Value) expr.Function {
	return call("patch", append([]expr.Value{url, body}, headers...)...)
}
