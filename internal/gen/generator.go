package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"balde-template-gen/internal/block"
)

// Placeholder is the format directive emitted for every printed value.
const Placeholder = "%s"

// Argument indentation inside the generated render function.
const (
	argIndent     = "        "
	callArgIndent = "            "
)

// GeneratorConfig holds the naming conventions of the generated C code.
type GeneratorConfig struct {
	// ToolName is quoted in the generated-file warning.
	ToolName string `yaml:"tool_name"`
	// FunctionPrefix is joined with the identifier by '_' to name the render function.
	FunctionPrefix string `yaml:"function_prefix"`
	// ContextType is the pointee type of the render function parameter.
	ContextType string `yaml:"context_type"`
	// ContextParam is the parameter name.
	ContextParam string `yaml:"context_param"`
	// LookupFunc resolves a template variable against the context.
	LookupFunc string `yaml:"lookup_func"`
	// AppendFunc appends the rendered string to the context body.
	AppendFunc string `yaml:"append_func"`
	// RequiredIncludes precede per-template includes in the implementation.
	RequiredIncludes []string `yaml:"required_includes"`
	// DeclarationIncludes are emitted inside the header guard.
	DeclarationIncludes []string `yaml:"declaration_includes"`
}

// DefaultGeneratorConfig returns the balde conventions.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ToolName:            "balde-template-gen",
		FunctionPrefix:      "balde_template",
		ContextType:         "balde_response_t",
		ContextParam:        "response",
		LookupFunc:          "balde_response_get_tmpl_var",
		AppendFunc:          "balde_response_append_body",
		RequiredIncludes:    []string{"balde.h", "glib.h"},
		DeclarationIncludes: []string{"balde.h"},
	}
}

// Generator renders template blocks into C source. It keeps no state between
// calls and may be shared by concurrent goroutines.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// FunctionName returns the render function name for identifier.
func (g *Generator) FunctionName(identifier string) string {
	return g.config.FunctionPrefix + "_" + identifier
}

// Signature returns the parameter list shared by the declaration and the
// implementation.
func (g *Generator) Signature() string {
	return g.config.ContextType + " *" + g.config.ContextParam
}

// Assembly is the result of walking a block sequence once.
type Assembly struct {
	// Includes lists include paths in encounter order.
	Includes []string
	// Format is the printf format before C string escaping.
	Format string
	// Arguments holds one C expression per placeholder, in order.
	Arguments []string
}

// Assemble walks blocks and collects includes, the format string and the
// argument expressions in lock-step.
func (g *Generator) Assemble(blocks []block.Block) Assembly {
	var (
		asm    Assembly
		format strings.Builder
	)

	for _, b := range blocks {
		switch b := b.(type) {
		case block.Include:
			asm.Includes = append(asm.Includes, b.Path)
		case block.Content:
			format.WriteString(EscapePercent(b.Text))
		case block.PrintVariable:
			format.WriteString(Placeholder)
			asm.Arguments = append(asm.Arguments, argIndent+g.lookupExpr(b.Name))
		case block.PrintFunctionCall:
			format.WriteString(Placeholder)
			asm.Arguments = append(asm.Arguments, g.callExpr(b))
		default:
			panic(fmt.Sprintf("gen: unexpected block type %T", b))
		}
	}

	asm.Format = format.String()

	return asm
}

func (g *Generator) lookupExpr(name string) string {
	return fmt.Sprintf("%s(%s, \"%s\")", g.config.LookupFunc, g.config.ContextParam, name)
}

func (g *Generator) callExpr(call block.PrintFunctionCall) string {
	var b strings.Builder

	b.WriteString(argIndent)
	b.WriteString(call.Name)

	if len(call.Args) == 0 {
		b.WriteString("()")

		return b.String()
	}

	b.WriteString("(\n")

	for i, arg := range call.Args {
		if i > 0 {
			b.WriteString(",\n")
		}

		b.WriteString(callArgIndent)
		b.WriteString(g.argExpr(arg))
	}

	b.WriteString(")")

	return b.String()
}

func (g *Generator) argExpr(arg block.Arg) string {
	switch {
	case arg.IsLiteral():
		return arg.Text
	case arg.Kind == block.ArgVariable:
		return g.lookupExpr(arg.Text)
	default:
		panic(fmt.Sprintf("gen: unexpected argument kind %s", arg.Kind))
	}
}

// GenerateImplementation renders the C implementation of the render function
// for identifier. The output depends only on its inputs.
func (g *Generator) GenerateImplementation(identifier string, blocks []block.Block) string {
	asm := g.Assemble(blocks)

	data := &implementationData{
		headerData: g.headerData(identifier),
		Includes:   asm.Includes,
		Format:     EscapeCString(asm.Format),
		Arguments:  strings.Join(asm.Arguments, ",\n"),
	}

	return execute(implementationTemplate, data)
}

// GenerateDeclaration renders the header declaring the render function for
// identifier.
func (g *Generator) GenerateDeclaration(identifier string) string {
	return execute(declarationTemplate, g.headerData(identifier))
}

func (g *Generator) headerData(identifier string) headerData {
	return headerData{
		ToolName:            g.config.ToolName,
		Identifier:          identifier,
		Function:            g.FunctionName(identifier),
		Signature:           g.Signature(),
		RequiredIncludes:    g.config.RequiredIncludes,
		DeclarationIncludes: g.config.DeclarationIncludes,
		AppendFunc:          g.config.AppendFunc,
		ContextParam:        g.config.ContextParam,
		GuardPrefix:         g.config.FunctionPrefix,
	}
}

// execute panics on failure: the templates are static and the data is plain
// strings, so an error is a bug in this package.
func execute(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("gen: executing %s template: %v", tmpl.Name(), err))
	}

	return buf.String()
}
