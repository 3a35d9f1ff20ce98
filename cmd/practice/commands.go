package main

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/daily-dev-lab/anagram"
	"github.com/amp-labs/daily-dev-lab/build"
	"github.com/amp-labs/daily-dev-lab/compare"
	"github.com/amp-labs/daily-dev-lab/envutil"
	"github.com/amp-labs/daily-dev-lab/errors"
	"github.com/amp-labs/daily-dev-lab/fibonacci"
	"github.com/amp-labs/daily-dev-lab/logger"
	"github.com/amp-labs/daily-dev-lab/palindrome"
	"github.com/amp-labs/daily-dev-lab/search"
	"github.com/amp-labs/daily-dev-lab/sorting"
	"github.com/spf13/cobra"
)

var errUnsorted = stderrors.New("input is not sorted; pass --sort to sort it first")

func searchCmd() *cobra.Command {
	var (
		target    int
		sortFirst bool
	)

	cmd := &cobra.Command{
		Use:   "search --target N ints...",
		Short: "Binary search a sorted list, printing the index or -1",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseInts(args)
			if err != nil {
				return err
			}

			if sortFirst {
				seq = sorting.Quick(seq)
			} else if !slices.IsSorted(seq) {
				return errUnsorted
			}

			idx := search.Binary(seq, target)

			logger.Get(cmd.Context()).Debug("Binary search", "size", len(seq), "target", target, "index", idx)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), idx)

			return err
		},
	}

	cmd.Flags().IntVarP(&target, "target", "t", 0, "value to look for")
	cmd.Flags().BoolVar(&sortFirst, "sort", false, "sort the input before searching")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func sortCmd() *cobra.Command {
	var (
		algorithm string
		stats     bool
		desc      bool
	)

	cmd := &cobra.Command{
		Use:   "sort [--algorithm bubble|quick] ints...",
		Short: "Sort integers",
		Long:  "Sort integers with the chosen algorithm. The default comes from PRACTICE_ALGORITHM, then quick.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if algorithm == "" {
				algorithm = envutil.String(ctx, "PRACTICE_ALGORITHM").ValueOrElse(sorting.AlgorithmQuick.String())
			}

			algo, err := sorting.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			seq, err := parseInts(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if stats && algo == sorting.AlgorithmBubble {
				sorted, st := sorting.BubbleWithStats(seq)

				_, err = fmt.Fprintf(out, "%s\npasses=%d comparisons=%d swaps=%d\n",
					joinInts(sorted), st.Passes, st.Comparisons, st.Swaps)

				return err
			}

			var sorted []int

			if desc {
				sorted, err = sortDescending(algo, seq)
			} else {
				sorted, err = sorting.Sort(algo, seq)
			}

			if err != nil {
				return err
			}

			logger.Get(ctx).Debug("Sorted input", "algorithm", algo.String(), "size", len(seq))

			_, err = fmt.Fprintln(out, joinInts(sorted))

			return err
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "",
		"sorting algorithm: "+strings.Join(algorithmNames(), ", "))
	cmd.Flags().BoolVar(&stats, "stats", false, "print pass, comparison and swap counts (bubble only)")
	cmd.Flags().BoolVarP(&desc, "desc", "d", false, "sort largest first")

	return cmd
}

func sortDescending(algo sorting.Algorithm, seq []int) ([]int, error) {
	byValue := compare.Reverse(compare.Ordered[int]())

	switch algo {
	case sorting.AlgorithmBubble:
		return sorting.BubbleFunc(seq, compare.Less(byValue)), nil
	case sorting.AlgorithmQuick:
		return sorting.QuickFunc(seq, byValue), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, algo)
	}
}

func algorithmNames() []string {
	names := make([]string, 0, len(sorting.Algorithms()))
	for _, a := range sorting.Algorithms() {
		names = append(names, a.String())
	}

	return names
}

func natsortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "natsort strings...",
		Short: "Sort strings in natural order (file2 before file10)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sorting.Natural(args), "\n"))

			return err
		},
	}
}

func anagramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anagram",
		Short: "Anagram checks and grouping",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check a b",
		Short: "Print whether two words are anagrams",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), anagram.IsAnagram(args[0], args[1]))

			return err
		},
	}, &cobra.Command{
		Use:   "group words...",
		Short: "Print words grouped by anagram, one group per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, group := range anagram.Group(args) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(group, " ")); err != nil {
					return err
				}
			}

			return nil
		},
	})

	return cmd
}

func palindromeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome text...",
		Short: "Print whether the text reads the same backwards, ignoring case and punctuation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), palindrome.IsPalindrome(strings.Join(args, " ")))

			return err
		},
	}
}

func fibCmd() *cobra.Command {
	var sequence bool

	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Print the Nth Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not an integer: %w", args[0], err)
			}

			if !sequence {
				v, err := fibonacci.Iterative(n)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), v)

				return err
			}

			seq, err := fibSequence(fibonacci.NewMemo(), n)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), seq)

			return err
		},
	}

	cmd.Flags().BoolVarP(&sequence, "sequence", "s", false, "print F(0) through F(N)")

	return cmd
}

// fibSequence renders F(0)..F(n) separated by spaces.
func fibSequence(memo *fibonacci.Memo, n int) (string, error) {
	if _, err := memo.Get(n); err != nil {
		return "", err
	}

	parts := make([]string, 0, n+1)

	for i := range n + 1 {
		v, err := memo.Get(i)
		if err != nil {
			return "", err
		}

		parts = append(parts, strconv.FormatUint(v, 10))
	}

	return strings.Join(parts, " "), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, _ := build.Current()

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, info.Summary())

			return err
		},
	}
}
