// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (account.go, sentiment.go, graphql.go, errors.go)
// with shared types and cross-cutting interfaces. No implementation code -
// just contracts. Keeping interfaces here prevents circular imports between
// the dispatcher, the stores, and the HTTP layer.
package domain
