// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Business code depends on the Config interface so it stays easy to test and
// does not care where values come from. The Viper implementation reads a YAML
// file, applies defaults, and lets PAYWATCH_* environment variables override
// any key (dots become underscores).
package pkgconfig
