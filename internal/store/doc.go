// Package store provides the in-memory account registry for single-instance
// mode. The Redis-backed variant for shared development setups lives in
// internal/redis.
package store
