package block

//go:generate go tool stringer -type=ArgKind -output=argkind_string.go

// ArgKind identifies the variant of an Arg.
type ArgKind int

const (
	_ ArgKind = iota

	ArgString
	ArgInt
	ArgFloat
	ArgBool
	ArgVariable
)

// Arg is a function-call argument. For literal kinds Text is already valid
// C source; for ArgVariable it is the variable name.
type Arg struct {
	Kind ArgKind
	Text string
}

func StringLiteral(text string) Arg     { return Arg{Kind: ArgString, Text: text} }
func IntLiteral(text string) Arg        { return Arg{Kind: ArgInt, Text: text} }
func FloatLiteral(text string) Arg      { return Arg{Kind: ArgFloat, Text: text} }
func BoolLiteral(text string) Arg       { return Arg{Kind: ArgBool, Text: text} }
func VariableReference(name string) Arg { return Arg{Kind: ArgVariable, Text: name} }

// IsLiteral reports whether the argument is emitted verbatim.
func (a Arg) IsLiteral() bool {
	switch a.Kind {
	case ArgString, ArgInt, ArgFloat, ArgBool:
		return true
	default:
		return false
	}
}
