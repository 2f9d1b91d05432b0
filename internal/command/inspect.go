package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"balde-template-gen/internal/block"
	"balde-template-gen/internal/diagnostic"
	"balde-template-gen/internal/gen"
	"balde-template-gen/internal/parse"
)

func newInspectCommand(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect template.html [template.[ch]]",
		Short: "print the parsed blocks of a template",
		Long: "Prints the parsed blocks of a template and the format string they assemble into.\n" +
			"The identifier is derived from the output path when one is given, as a build would.",
		Args: rangeArgs(1, 2, "Usage: $ balde-template-gen inspect template.html [template.[ch]]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return diagnostic.Read(args[0], err)
			}

			blocks, err := parse.Parse(args[0], src)
			if err != nil {
				return diagnostic.Syntax(err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "KIND", "SLOT", "DETAIL"})

			slot := 0

			for i, b := range blocks {
				placeholder := "-"
				if block.IsPrint(b) {
					placeholder = fmt.Sprintf("%%s #%d", slot)
					slot++
				}

				t.AppendRow(table.Row{i, b.Kind(), placeholder, describe(b)})
			}

			t.Render()

			asm := env.generator.Assemble(blocks)
			out := cmd.OutOrStdout()
			named := args[0]
			if len(args) > 1 {
				named = args[1]
			}

			_, _ = fmt.Fprintf(out, "identifier: %s\n", gen.DeriveIdentifier(named))
			_, _ = fmt.Fprintf(out, "function: %s\n", env.generator.FunctionName(gen.DeriveIdentifier(named)))
			_, _ = fmt.Fprintf(out, "format: \"%s\"\n", gen.EscapeCString(asm.Format))
			_, _ = fmt.Fprintf(out, "arguments: %d\n", len(asm.Arguments))

			return nil
		},
	}
}

func describe(b block.Block) string {
	switch b := b.(type) {
	case block.Include:
		return b.Path
	case block.Content:
		return fmt.Sprintf("%q", b.Text)
	case block.PrintVariable:
		return b.Name
	case block.PrintFunctionCall:
		args := make([]string, 0, len(b.Args))
		for _, a := range b.Args {
			args = append(args, a.Text)
		}

		return b.Name + "(" + strings.Join(args, ", ") + ")"
	default:
		return ""
	}
}
