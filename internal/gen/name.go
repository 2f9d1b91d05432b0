package gen

import (
	"path/filepath"
	"strings"
)

// DeriveIdentifier turns a file path into the identifier used for the render
// function suffix and the header guard.
//
// The directory part is dropped and the name is cut at its last '.'. A dot in
// the first position is not an extension separator, so ".c" stays "_c" rather
// than collapsing to nothing. Every byte that is not an ASCII letter is then
// replaced with '_'. The result is not guaranteed to be a legal C identifier.
func DeriveIdentifier(path string) string {
	name := filepath.Base(path)

	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}

	out := []byte(name)
	for i, c := range out {
		if !isASCIIAlpha(c) {
			out[i] = '_'
		}
	}

	return string(out)
}

func isASCIIAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
