package block

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies the variant of a Block.
type Kind int

const (
	_ Kind = iota // zero value is never a valid block kind

	KindInclude
	KindContent
	KindPrintVariable
	KindPrintFunctionCall
)

// Block is one structural unit of a parsed template.
// The set of implementations is closed; consumers switch on the concrete type.
type Block interface {
	Kind() Kind
	isBlock()
}

// Include asks the generated implementation file to include a header.
type Include struct {
	Path string
}

// Content is literal template text.
type Content struct {
	Text string
}

// PrintVariable prints a variable looked up from the response at render time.
type PrintVariable struct {
	Name string
}

// PrintFunctionCall prints the value returned by a function call.
type PrintFunctionCall struct {
	Name string
	Args []Arg
}

func (Include) Kind() Kind           { return KindInclude }
func (Content) Kind() Kind           { return KindContent }
func (PrintVariable) Kind() Kind     { return KindPrintVariable }
func (PrintFunctionCall) Kind() Kind { return KindPrintFunctionCall }

func (Include) isBlock()           {}
func (Content) isBlock()           {}
func (PrintVariable) isBlock()     {}
func (PrintFunctionCall) isBlock() {}

// IsPrint reports whether b contributes a placeholder to the format string.
func IsPrint(b Block) bool {
	switch b.Kind() {
	case KindPrintVariable, KindPrintFunctionCall:
		return true
	default:
		return false
	}
}
