package command

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"balde-template-gen/internal/build"
	"balde-template-gen/internal/config"
	"balde-template-gen/internal/diagnostic"
	"balde-template-gen/internal/gen"
	"balde-template-gen/internal/log"
)

const (
	cliName    = "balde-template-gen"
	cliUsage   = "Usage: $ balde-template-gen template.html template.[ch]"
	exitFailed = 1
)

// GlobalFlags are shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
}

// runtimeEnv is what a command needs once flags are parsed.
type runtimeEnv struct {
	config    *config.File
	logger    *logrus.Logger
	generator *gen.Generator
	builder   *build.Builder
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	flags := &GlobalFlags{}

	root := &cobra.Command{
		Use:   cliName + " template.html template.[ch]",
		Short: "compile a balde template into C source",
		Long: "Compiles a balde template into the C implementation (.c) or declaration (.h)\n" +
			"of its render function. The output extension selects the artifact.",
		Args:          exactArgs(2, cliUsage),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			return env.builder.Build(cmd.Context(), build.Job{Template: args[0], Output: args[1]})
		},
	}

	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"log level: debug, info, warn or error (default from config or $"+log.EnvLevel+")")

	root.AddCommand(
		newBatchCommand(flags),
		newInspectCommand(flags),
		newConfigCommand(flags),
	)

	return root
}

// Execute runs the command line and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		reportError(stderr, err)

		return exitFailed
	}

	return 0
}

func setup(cmd *cobra.Command, flags *GlobalFlags) (*runtimeEnv, error) {
	cfg := config.Default()

	if flags.ConfigFile != "" {
		loaded, err := config.LoadFile(flags.ConfigFile)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	logger := log.New(cmd.ErrOrStderr(), log.ResolveLevel(flags.LogLevel, cfg.LogLevel))
	generator := gen.NewGenerator(cfg.Generator)

	logger.WithFields(logrus.Fields{
		"config":  flags.ConfigFile,
		"command": cmd.Name(),
	}).Debug("configuration loaded")

	return &runtimeEnv{
		config:    cfg,
		logger:    logger,
		generator: generator,
		builder:   build.NewBuilder(generator, logger),
	}, nil
}

// exactArgs is cobra.ExactArgs with a usage error.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return diagnostic.Usage(usage)
		}

		return nil
	}
}

// rangeArgs is cobra.RangeArgs with a usage error.
func rangeArgs(lo, hi int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			return diagnostic.Usage(usage)
		}

		return nil
	}
}

func reportError(w io.Writer, err error) {
	red := color.New(color.FgRed)

	var de *diagnostic.Error
	if errors.As(err, &de) && de.Kind == diagnostic.KindUsage {
		_, _ = red.Fprintln(w, de.Message)

		return
	}

	_, _ = red.Fprintf(w, "%s: %s\n", cliName, err)
}
