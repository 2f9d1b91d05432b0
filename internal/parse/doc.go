// Package parse reads balde template text into a block sequence.
//
// Grammar:
//   - {% include "header.h" %}           include directive
//   - {{ name }}                          variable print
//   - {{ name(arg, ...) }}                function call print
//   - anything else                       literal content
//
// Function arguments are string, integer, float and boolean literals or
// variable names. Literals are kept as C source text; booleans become TRUE
// and FALSE.
package parse
