package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/amp-labs/daily-dev-lab/bench"
	"github.com/amp-labs/daily-dev-lab/cli"
	"github.com/amp-labs/daily-dev-lab/sorting"
	"github.com/spf13/cobra"
)

func benchCmd() *cobra.Command {
	var (
		trials      int
		size        int
		workers     int
		algorithm   string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Race the sorting algorithms on random input",
		Long: "Race the sorting algorithms on random input. Defaults come from " +
			"BENCH_TRIALS, BENCH_SIZE, BENCH_WORKERS, BENCH_SEED and PRACTICE_ALGORITHM.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := bench.ConfigFromEnv(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()

			if flags.Changed("trials") {
				cfg.Trials = trials
			}

			if flags.Changed("size") {
				cfg.Size = size
			}

			if flags.Changed("workers") {
				cfg.Workers = workers
			}

			if flags.Changed("algorithm") {
				algo, err := sorting.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}

				cfg.Algorithms = []sorting.Algorithm{algo}
			}

			if interactive {
				proceed, err := askBenchConfig(&cfg)
				if errors.Is(err, cli.ErrAborted) || (err == nil && !proceed) {
					return nil
				}

				if err != nil {
					return err
				}
			}

			report, err := bench.Run(ctx, cfg)
			if report == nil {
				return err
			}

			out := cmd.OutOrStdout()

			header := fmt.Sprintf("run %s\n%d trials of %d integers", report.RunID, report.Trials, report.Size)
			if _, perr := fmt.Fprintln(out, cli.BannerAutoWidth(ctx, header, cli.AlignLeft)); perr != nil {
				return perr
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) //nolint:mnd

			_, _ = fmt.Fprintln(tw, "ALGORITHM\tRUNS\tFAILURES\tMEAN")

			for _, algo := range cfg.Algorithms {
				res := report.Results[algo]
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", algo, res.Runs, res.Failures, res.Mean())
			}

			if ferr := tw.Flush(); ferr != nil {
				return ferr
			}

			return err
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 0, "random inputs per algorithm")
	cmd.Flags().IntVar(&size, "size", 0, "length of each input")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent sorts")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "only run this algorithm")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose algorithms and sizes at prompts")

	return cmd
}

// askBenchConfig lets the user adjust cfg at the terminal. It returns false
// if the user declined to run.
func askBenchConfig(cfg *bench.Config) (bool, error) {
	picked, err := cli.MultiSelect("Algorithms", algorithmNames()...)
	if err != nil {
		return false, err
	}

	if len(picked) > 0 {
		cfg.Algorithms = make([]sorting.Algorithm, 0, len(picked))

		for _, name := range picked {
			algo, err := sorting.ParseAlgorithm(name)
			if err != nil {
				return false, err
			}

			cfg.Algorithms = append(cfg.Algorithms, algo)
		}
	}

	if cfg.Trials, err = cli.PromptInt("Trials", cfg.Trials); err != nil {
		return false, err
	}

	if cfg.Size, err = cli.PromptInt("Input size", cfg.Size); err != nil {
		return false, err
	}

	return cli.PromptConfirm(fmt.Sprintf("Run %d trials of %d integers", cfg.Trials, cfg.Size))
}
