// Package domain contains the core model for rpnsort.
//
// The domain is I/O-agnostic: it does not depend on YAML parsing, the lexer
// implementation, or the filesystem. Infra/adapters map into/from these types.
package domain
