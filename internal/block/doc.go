// Package block defines the intermediate representation shared by the
// template parser and the code generator.
//
// Key types:
//   - Block: sealed union of Include, Content, PrintVariable and PrintFunctionCall
//   - Arg: one argument of a function call (literal or variable reference)
//   - Kind / ArgKind: tags used for exhaustive switches and debug output
package block
