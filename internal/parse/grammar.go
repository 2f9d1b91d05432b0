package parse

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// templateNode is the root of the participle grammar.
type templateNode struct {
	Nodes []*node `@@*`
}

type node struct {
	Include *includeNode `  @@`
	Print   *printNode   `| @@`
	Text    *string      `| @Text`
}

type includeNode struct {
	Pos lexer.Position

	Path string `DirectiveOpen Include @String DirectiveClose`
}

type printNode struct {
	Name string    `PrintOpen @Ident`
	Call *callNode `@@? PrintClose`
}

// callNode is present, possibly with no Args, when the print has parentheses.
// Open is captured so an empty argument list still yields a node.
type callNode struct {
	Open string     `@"("`
	Args []*argNode `( @@ ( "," @@ )* )? ")"`
}

type argNode struct {
	String *string `  @String`
	Float  *string `| @Float`
	Int    *string `| @Int`
	Bool   *string `| @Bool`
	Var    *string `| @Ident`
}
