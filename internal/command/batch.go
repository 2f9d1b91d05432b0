package command

import (
	"runtime"

	"github.com/spf13/cobra"

	"balde-template-gen/internal/diagnostic"
)

func newBatchCommand(flags *GlobalFlags) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "build every job listed in the config file",
		Args:  exactArgs(0, "Usage: $ balde-template-gen batch --config balde-templates.yaml"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.ConfigFile == "" {
				return diagnostic.Usage("batch requires --config")
			}

			env, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			n := env.config.Concurrency
			if cmd.Flags().Changed("concurrency") {
				n = concurrency
			}

			if n <= 0 {
				n = runtime.NumCPU()
			}

			env.logger.WithField("jobs", len(env.config.Jobs)).WithField("concurrency", n).Info("starting batch")

			return env.builder.BuildAll(cmd.Context(), env.config.Jobs, n)
		},
	}

	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "maximum parallel builds (default from config, else one per CPU)")

	return cmd
}
