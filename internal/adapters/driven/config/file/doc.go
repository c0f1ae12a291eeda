// Package file provides file-based configuration storage using TOML.
//
// Configuration lives at ~/.inkforge/config.toml by default. Missing
// files and missing keys fall back to defaults, so a fresh install works
// with no configuration at all.
package file
