package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amp-labs/daily-dev-lab/envutil"
	"github.com/amp-labs/daily-dev-lab/logger"
	"github.com/spf13/cobra"
)

const appName = "practice"

type app struct {
	// logOutput overrides LOG_OUTPUT when set.
	logOutput io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Classic algorithm and data structure exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}

	root.AddCommand(
		searchCmd(),
		sortCmd(),
		natsortCmd(),
		anagramCmd(),
		palindromeCmd(),
		fibCmd(),
		benchCmd(),
		versionCmd(),
		exercisesCmd(),
	)

	return root
}

// setup loads PRACTICE_ENV_FILE into the environment, then configures
// logging, so the env file can carry LOG_* settings.
func (a *app) setup(ctx context.Context) error {
	envFile := envutil.String(ctx, "PRACTICE_ENV_FILE").ValueOrElse("")

	loaded := 0

	if envFile != "" {
		n, err := envutil.Load(envFile)
		if err != nil {
			return err
		}

		loaded = n
	}

	var opts []logger.Option
	if a.logOutput != nil {
		opts = append(opts, logger.WithOutput(a.logOutput))
	}

	if _, err := logger.ConfigureLogging(ctx, appName, opts...); err != nil {
		return err
	}

	if envFile != "" {
		logger.Get(ctx).Debug("Loaded environment file", "path", envFile, "variables", loaded)
	}

	return nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))

	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", f, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
