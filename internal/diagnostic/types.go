package diagnostic

import (
	"errors"
	"fmt"
)

// Kind is the class of a build failure.
type Kind int

const (
	KindUsage Kind = iota + 1
	KindIO
	KindExtension
	KindSyntax
)

const unknownStr = "unknown"

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindIO:
		return "io"
	case KindExtension:
		return "extension"
	case KindSyntax:
		return "syntax"
	default:
		return unknownStr
	}
}

// Error is a classified build failure.
type Error struct {
	// Kind of failure.
	Kind Kind
	// Path is the file the failure relates to (if any).
	Path string
	// Message is the human-readable description.
	Message string
	// Err is the underlying cause (if any).
	Err error
}

// Error returns a formatted message: "<message>: <path>: <cause>".
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Usage reports a wrong invocation.
func Usage(message string) *Error {
	return &Error{Kind: KindUsage, Message: message}
}

// Read reports an unreadable template source.
func Read(path string, err error) *Error {
	return &Error{Kind: KindIO, Path: path, Message: "failed to read source file", Err: err}
}

// Write reports an unwritable output file.
func Write(path string, err error) *Error {
	return &Error{Kind: KindIO, Path: path, Message: "failed to write file", Err: err}
}

// Extension reports an output path with an unrecognized extension.
func Extension(path string) *Error {
	return &Error{Kind: KindExtension, Path: path, Message: "invalid filename"}
}

// Syntax reports a template the parser rejected. The parser error already
// carries the position, so the path is not repeated.
func Syntax(err error) *Error {
	return &Error{Kind: KindSyntax, Message: "invalid template", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}

	return 0, false
}
