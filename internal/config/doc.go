// Package config loads, normalizes, and validates subcue's TOML
// configuration.
//
// Load resolves the config file (explicit path or ~/.config/subcue/),
// decodes it over Default(), expands path fields, and validates the result
// so downstream components can trust every threshold without re-checking.
// The configuration value is read-only after Load; pipeline components
// receive it explicitly instead of reading ambient state.
package config
