package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/amp-labs/daily-dev-lab/anagram"
	"github.com/amp-labs/daily-dev-lab/cli"
	"github.com/amp-labs/daily-dev-lab/dateutil"
	"github.com/amp-labs/daily-dev-lab/fibonacci"
	"github.com/amp-labs/daily-dev-lab/fileutil"
	"github.com/amp-labs/daily-dev-lab/linkedlist"
	"github.com/amp-labs/daily-dev-lab/listutil"
	"github.com/amp-labs/daily-dev-lab/logger"
	"github.com/amp-labs/daily-dev-lab/mathutil"
	"github.com/amp-labs/daily-dev-lab/palindrome"
	"github.com/amp-labs/daily-dev-lab/search"
	"github.com/amp-labs/daily-dev-lab/sorting"
	"github.com/amp-labs/daily-dev-lab/strutil"
	"github.com/amp-labs/daily-dev-lab/tree"
	"github.com/spf13/cobra"
)

const quitItem = "Quit"

var errWantTwo = errors.New("expected exactly two values")

// exercise is one entry of the interactive menu. solve turns the user's
// answer to prompt into the text to print.
type exercise struct {
	name    string
	prompt  string
	example string
	solve   func(input string) (string, error)
}

func exercises(memo *fibonacci.Memo) []exercise {
	return []exercise{
		{
			name:    "Binary search",
			prompt:  "Sorted numbers, then the target last",
			example: "1 3 5 7 9 11 7",
			solve:   solveBinarySearch,
		},
		{
			name:    "Bubble sort",
			prompt:  "Numbers",
			example: "5 1 4 2 8",
			solve:   solveBubbleSort,
		},
		{
			name:    "Quick sort",
			prompt:  "Numbers",
			example: "3 6 8 10 1 2 1",
			solve: func(input string) (string, error) {
				seq, err := parseInts(strings.Fields(input))
				if err != nil {
					return "", err
				}

				return joinInts(sorting.Quick(seq)), nil
			},
		},
		{
			name:    "Natural sort",
			prompt:  "Words",
			example: "file10 file2 file1",
			solve: func(input string) (string, error) {
				return strings.Join(sorting.Natural(strings.Fields(input)), " "), nil
			},
		},
		{
			name:    "Anagram groups",
			prompt:  "Words",
			example: "listen silent enlist google elgoog cat act",
			solve: func(input string) (string, error) {
				groups := anagram.Group(strings.Fields(input))

				lines := make([]string, len(groups))
				for i, g := range groups {
					lines[i] = strings.Join(g, " ")
				}

				return strings.Join(lines, "\n"), nil
			},
		},
		{
			name:    "Palindrome",
			prompt:  "Text",
			example: "A man, a plan, a canal: Panama",
			solve: func(input string) (string, error) {
				return strconv.FormatBool(palindrome.IsPalindromeTwoPointer(input)), nil
			},
		},
		{
			name:    "Fibonacci",
			prompt:  "N",
			example: "10",
			solve: func(input string) (string, error) {
				n, err := strconv.Atoi(strings.TrimSpace(input))
				if err != nil {
					return "", err
				}

				return fibSequence(memo, n)
			},
		},
		{
			name:    "Linked list",
			prompt:  "Values",
			example: "1 2 3 4",
			solve:   solveLinkedList,
		},
		{
			name:    "Binary search tree",
			prompt:  "Numbers to insert",
			example: "8 3 10 1 6 14",
			solve:   solveTree,
		},
		{
			name:    "Prime factors",
			prompt:  "N",
			example: "360",
			solve: func(input string) (string, error) {
				n, err := strconv.Atoi(strings.TrimSpace(input))
				if err != nil {
					return "", err
				}

				return fmt.Sprintf("factors: %s\nprime: %t", joinInts(mathutil.PrimeFactors(n)), mathutil.IsPrime(n)), nil
			},
		},
		{
			name:    "GCD and LCM",
			prompt:  "Two numbers",
			example: "12 18",
			solve: func(input string) (string, error) {
				nums, err := parseInts(strings.Fields(input))
				if err != nil {
					return "", err
				}

				if len(nums) != 2 { //nolint:mnd
					return "", errWantTwo
				}

				lcm, err := mathutil.LCM(nums[0], nums[1])
				if err != nil {
					return "", err
				}

				return fmt.Sprintf("gcd: %d\nlcm: %d", mathutil.GCD(nums[0], nums[1]), lcm), nil
			},
		},
		{
			name:    "Factorial",
			prompt:  "N",
			example: "10",
			solve: func(input string) (string, error) {
				n, err := strconv.Atoi(strings.TrimSpace(input))
				if err != nil {
					return "", err
				}

				v, err := mathutil.Factorial(n)
				if err != nil {
					return "", err
				}

				return strconv.FormatUint(v, 10), nil
			},
		},
		{
			name:    "Case conversion",
			prompt:  "An identifier",
			example: "helloWorldExample",
			solve: func(input string) (string, error) {
				snake := strutil.CamelToSnake(strings.TrimSpace(input))

				return fmt.Sprintf("snake: %s\ncamel: %s", snake, strutil.SnakeToCamel(snake)), nil
			},
		},
		{
			name:    "Word count",
			prompt:  "Text",
			example: "the quick brown fox jumps over the lazy dog",
			solve: func(input string) (string, error) {
				return fmt.Sprintf("words: %d\npreview: %s",
					strutil.WordCount(input), strutil.Truncate(input, 20, "...")), nil //nolint:mnd
			},
		},
		{
			name:    "Dates",
			prompt:  "Two dates (YYYY-MM-DD)",
			example: "2024-01-01 2024-03-01",
			solve:   solveDates,
		},
		{
			name:    "Unique and duplicates",
			prompt:  "Numbers",
			example: "1 2 2 3 1 4 5",
			solve:   solveListUtil,
		},
		{
			name:    "Files",
			prompt:  "JSON object",
			example: `{"exercise": "files", "done": true}`,
			solve:   solveFiles,
		},
	}
}

func solveBinarySearch(input string) (string, error) {
	nums, err := parseInts(strings.Fields(input))
	if err != nil {
		return "", err
	}

	if len(nums) == 0 {
		return strconv.Itoa(search.NotFound), nil
	}

	seq, target := sorting.Quick(nums[:len(nums)-1]), nums[len(nums)-1]

	return fmt.Sprintf("searching %s\nindex: %d", joinInts(seq), search.Binary(seq, target)), nil
}

func solveBubbleSort(input string) (string, error) {
	seq, err := parseInts(strings.Fields(input))
	if err != nil {
		return "", err
	}

	sorted, st := sorting.BubbleWithStats(seq)

	return fmt.Sprintf("%s\npasses=%d comparisons=%d swaps=%d",
		joinInts(sorted), st.Passes, st.Comparisons, st.Swaps), nil
}

func solveLinkedList(input string) (string, error) {
	list := linkedlist.From(strings.Fields(input)...)
	before := list.String()

	list.Reverse()

	return fmt.Sprintf("%s\nreversed: %s", before, list), nil
}

func solveTree(input string) (string, error) {
	nums, err := parseInts(strings.Fields(input))
	if err != nil {
		return "", err
	}

	var root *tree.Node[int]
	for _, n := range nums {
		root = tree.Insert(root, n)
	}

	return fmt.Sprintf("in-order: %s\npre-order: %s\npost-order: %s\nheight: %d",
		joinInts(tree.InOrder(root)),
		joinInts(tree.PreOrder(root)),
		joinInts(tree.PostOrder(root)),
		tree.Height(root)), nil
}

func solveDates(input string) (string, error) {
	dates := strings.Fields(input)
	if len(dates) != 2 { //nolint:mnd
		return "", errWantTwo
	}

	days, err := dateutil.DaysBetween(dates[0], dates[1])
	if err != nil {
		return "", err
	}

	long, err := dateutil.Format(dates[0], dateutil.DateLayout, dateutil.LongLayout)
	if err != nil {
		return "", err
	}

	weekend, err := dateutil.IsWeekend(dates[0])
	if err != nil {
		return "", err
	}

	next, err := dateutil.AddDays(dates[0], days)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("days between: %d\n%s (weekend: %t)\nplus %d days: %s", days, long, weekend, days, next), nil
}

func solveListUtil(input string) (string, error) {
	nums, err := parseInts(strings.Fields(input))
	if err != nil {
		return "", err
	}

	chunks, err := listutil.Chunk(nums, 3) //nolint:mnd
	if err != nil {
		return "", err
	}

	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = "[" + joinInts(c) + "]"
	}

	return fmt.Sprintf("unique: %s\nduplicates: %s\nchunks of 3: %s\nflattened: %s",
		joinInts(listutil.Unique(nums)),
		joinInts(listutil.Duplicates(nums)),
		strings.Join(parts, " "),
		joinInts(listutil.Flatten(chunks))), nil
}

func solveFiles(input string) (string, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp("", "practice-files-")
	if err != nil {
		return "", err
	}

	defer os.RemoveAll(dir) //nolint:errcheck

	path := filepath.Join(dir, "exercise.json")
	if err := fileutil.WriteJSON(path, doc, fileutil.DefaultIndent); err != nil {
		return "", err
	}

	size, err := fileutil.FileSize(path)
	if err != nil {
		return "", err
	}

	listed, err := fileutil.ListFiles(dir, "json")
	if err != nil {
		return "", err
	}

	names := make([]string, len(listed))
	for i, p := range listed {
		names[i] = filepath.Base(p)
	}

	back, err := fileutil.ReadJSON[map[string]any](path)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("wrote exercise.json (%s)\njson files: %s\nread back: %v",
		size, strings.Join(names, " "), back), nil
}

func exercisesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "Pick exercises from an interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runMenu(cmd.Context(), cmd.OutOrStdout(), exercises(fibonacci.NewMemo()))
			if errors.Is(err, cli.ErrAborted) {
				return nil
			}

			return err
		},
	}
}

func runMenu(ctx context.Context, out io.Writer, items []exercise) error {
	names := make([]string, 0, len(items)+1)
	byName := make(map[string]exercise, len(items))

	for _, ex := range items {
		names = append(names, ex.name)
		byName[ex.name] = ex
	}

	names = append(names, quitItem)

	if _, err := fmt.Fprintln(out, cli.BannerAutoWidth(ctx, "Daily practice", cli.AlignCenter)); err != nil {
		return err
	}

	for ctx.Err() == nil {
		choice, err := cli.Select("Exercise", names...)
		if err != nil {
			return err
		}

		if choice == quitItem {
			return nil
		}

		ex := byName[choice]

		input, err := cli.Prompt(ex.prompt, ex.example)
		if err != nil {
			return err
		}

		result, err := ex.solve(input)
		if err != nil {
			logger.Get(ctx).Warn("Exercise failed", "exercise", ex.name, "error", err)

			result = "error: " + err.Error()
		}

		if _, err := fmt.Fprint(out, result+"\n"+cli.DividerAutoWidth()); err != nil {
			return err
		}
	}

	return ctx.Err()
}
