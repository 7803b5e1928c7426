// Package pkgrand provides the seedable pseudo-random source behind the mock
// data generators, so tests can pin the sequence.
package pkgrand
