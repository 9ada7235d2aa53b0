// Package dispatch implements the mock GraphQL backend: it routes a named
// operation plus variables to the user store, the token issuer, or the
// sentiment scorer, and produces either a data payload or a list of GraphQL
// error entries. It owns all request validation; the stores stay dumb.
package dispatch
