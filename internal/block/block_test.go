package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"balde-template-gen/internal/block"
)

func TestBlockKinds(t *testing.T) {
	tests := []struct {
		block block.Block
		kind  block.Kind
		name  string
		print bool
	}{
		{block.Include{Path: "a.h"}, block.KindInclude, "KindInclude", false},
		{block.Content{Text: "x"}, block.KindContent, "KindContent", false},
		{block.PrintVariable{Name: "v"}, block.KindPrintVariable, "KindPrintVariable", true},
		{block.PrintFunctionCall{Name: "f"}, block.KindPrintFunctionCall, "KindPrintFunctionCall", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.block.Kind())
			assert.Equal(t, tt.name, tt.block.Kind().String())
			assert.Equal(t, tt.print, block.IsPrint(tt.block))
		})
	}
}

func TestKindString_OutOfRange(t *testing.T) {
	assert.Equal(t, "Kind(0)", block.Kind(0).String())
	assert.Equal(t, "ArgKind(9)", block.ArgKind(9).String())
}

func TestArgConstructors(t *testing.T) {
	args := []block.Arg{
		block.StringLiteral(`"s"`),
		block.IntLiteral("1"),
		block.FloatLiteral("1.5"),
		block.BoolLiteral("TRUE"),
		block.VariableReference("v"),
	}

	kinds := []block.ArgKind{block.ArgString, block.ArgInt, block.ArgFloat, block.ArgBool, block.ArgVariable}
	for i, a := range args {
		assert.Equal(t, kinds[i], a.Kind)
		assert.Equal(t, a.Kind != block.ArgVariable, a.IsLiteral(), a.Kind.String())
	}

	assert.Equal(t, "v", args[4].Text)
}
