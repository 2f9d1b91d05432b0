// Package diagnostic classifies the failures of a template build.
//
// Key capabilities:
//   - A Kind per failure class (usage, I/O, extension, syntax)
//   - An Error type carrying the offending path and the wrapped cause
//   - KindOf to recover the class from any wrapped error
package diagnostic
