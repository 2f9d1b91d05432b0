package parse

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"balde-template-gen/internal/block"
)

var templateParser = participle.MustBuild[templateNode](
	participle.Lexer(templateLexer),
	participle.Elide("whitespace"),
)

// Parse parses template source into blocks. filename is only used in error
// positions.
func Parse(filename string, src []byte) ([]block.Block, error) {
	tree, err := templateParser.ParseBytes(filename, src)
	if err != nil {
		return nil, err
	}

	return toBlocks(tree)
}

// ParseString is Parse for string input.
func ParseString(filename, src string) ([]block.Block, error) {
	return Parse(filename, []byte(src))
}

func toBlocks(tree *templateNode) ([]block.Block, error) {
	blocks := make([]block.Block, 0, len(tree.Nodes))

	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			blocks = append(blocks, block.Content{Text: text.String()})
			text.Reset()
		}
	}

	for _, n := range tree.Nodes {
		switch {
		case n.Text != nil:
			text.WriteString(*n.Text)
		case n.Include != nil:
			flush()

			path, err := strconv.Unquote(n.Include.Path)
			if err != nil {
				return nil, participle.Errorf(n.Include.Pos, "invalid include path %s: %v", n.Include.Path, err)
			}

			blocks = append(blocks, block.Include{Path: path})
		case n.Print != nil:
			flush()
			blocks = append(blocks, toPrint(n.Print))
		}
	}

	flush()

	return blocks, nil
}

func toPrint(p *printNode) block.Block {
	if p.Call == nil {
		return block.PrintVariable{Name: p.Name}
	}

	call := block.PrintFunctionCall{Name: p.Name}
	for _, a := range p.Call.Args {
		call.Args = append(call.Args, toArg(a))
	}

	return call
}

func toArg(a *argNode) block.Arg {
	switch {
	case a.String != nil:
		return block.StringLiteral(*a.String)
	case a.Float != nil:
		return block.FloatLiteral(*a.Float)
	case a.Int != nil:
		return block.IntLiteral(*a.Int)
	case a.Bool != nil:
		return block.BoolLiteral(strings.ToUpper(*a.Bool))
	default:
		return block.VariableReference(*a.Var)
	}
}
