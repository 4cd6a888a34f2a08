// Package colormath parses the hex/rgb()/hsl() color notations, converts
// between them and evaluates WCAG 2.1 contrast.
//
// Every function is pure and safe for concurrent use. Unparseable input is an
// expected outcome, reported with a false second return value rather than an
// error.
package colormath
