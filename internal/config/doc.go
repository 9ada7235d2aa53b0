// Package config provides environment-based configuration.
//
// Loads from a .env file when present (gotenv), maps to the Config struct
// with per-field defaults, and validates ranges before the server starts.
package config
