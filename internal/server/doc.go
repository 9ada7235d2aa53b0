// Package server implements the HTTP server using Echo framework.
//
// Routes: the GraphQL endpoint (POST /graphql), health probes, Prometheus
// metrics, and version info. Handlers split by concern: handlers_graphql.go,
// handlers_health.go.
package server
