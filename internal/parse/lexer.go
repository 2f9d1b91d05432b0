package parse

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// lexerRules splits template text into content and the tokens found
	// between {% %} and {{ }} delimiters.
	lexerRules = lexer.Rules{
		"Root": {
			{"DirectiveOpen", `\{%`, lexer.Push("Directive")},
			{"PrintOpen", `\{\{`, lexer.Push("Print")},
			// A '{' only starts a delimiter when followed by '{' or '%'.
			{"Text", `(?:[^{]|\{[^{%])+|\{`, nil},
		},
		// Strings end on the line they start on so they stay valid C literals.
		"Directive": {
			{"whitespace", `\s+`, nil},
			{"Include", `include\b`, nil},
			{"String", `"(?:\\.|[^"\\\n\r])*"`, nil},
			{"DirectiveClose", `%\}`, lexer.Pop()},
		},
		"Print": {
			{"whitespace", `\s+`, nil},
			{"String", `"(?:\\.|[^"\\\n\r])*"`, nil},
			{"Float", `[-+]?(?:\d+\.\d*|\.\d+)(?:[eE][-+]?\d+)?|[-+]?\d+[eE][-+]?\d+`, nil},
			{"Int", `[-+]?\d+`, nil},
			{"Bool", `(?:true|false)\b`, nil},
			{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
			{"Punct", `[(),]`, nil},
			{"PrintClose", `\}\}`, lexer.Pop()},
		},
	}

	templateLexer = lexer.MustStateful(lexerRules)
)
