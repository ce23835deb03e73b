// Package config loads and validates notename configuration.
//
// Configuration is read from a TOML file, with values merged over
// repository defaults. Paths are expanded (~ and relative forms) during
// normalization, and validation rejects settings the naming pipeline
// cannot honor, such as a non-positive name length budget.
package config
