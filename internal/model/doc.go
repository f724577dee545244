// Package model defines the result types shared by the checker, the runner
// and the report writers.
//
// A CheckResult is a typed outcome of one URL check: either the HTTP status
// the server answered with, or a transport error with its ErrorKind. The
// package also owns the text layout of a status line, so the console and
// the report file always agree on it.
package model
