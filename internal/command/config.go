package command

import (
	"github.com/spf13/cobra"

	"balde-template-gen/internal/config"
)

func newConfigCommand(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		Args:  exactArgs(0, "Usage: $ balde-template-gen config [--config balde-templates.yaml]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			data, err := config.Marshal(env.config)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
