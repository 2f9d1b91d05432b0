// Package gen turns a parsed template into C source for a balde render
// function.
//
// Generation is a single walk over the blocks followed by text/template
// rendering of two artifacts:
//   - the implementation (.c): includes, a static format string and the render
//     function that fills it with g_strdup_printf
//   - the declaration (.h): an include-guarded prototype of the same function
//
// Escaping happens in two independent passes. Literal text first has '%'
// doubled (EscapePercent); the whole format string is then escaped as a C
// string literal (EscapeCString). Output is deterministic: the same identifier
// and blocks always produce the same bytes.
package gen
