package cli

import (
	"strings"

	"github.com/amp-labs/daily-dev-lab/listutil"
	"github.com/manifoldco/promptui"
)

const doneItem = "[Done]"

// prefixSearcher lets the user type to jump to items starting with the
// input, ignoring case. Items listed in skip (by index) never match.
func prefixSearcher(items []string, skip ...int) func(string, int) bool {
	return func(input string, index int) bool {
		for _, s := range skip {
			if s == index {
				return false
			}
		}

		if input == "" {
			return false
		}

		return strings.HasPrefix(strings.ToLower(items[index]), strings.ToLower(input))
	}
}

// Select shows a menu of choices and returns the one picked.
func Select(label string, choices ...string) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}

	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Size:     len(choices),
		Searcher: prefixSearcher(choices),
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", aborted(err)
	}

	return value, nil
}

// remaining returns the choices not yet picked, without duplicates, behind a
// leading [Done] entry.
func remaining(choices []string, picked map[string]bool) []string {
	items := []string{doneItem}

	for _, c := range listutil.Unique(choices) {
		if !picked[c] {
			items = append(items, c)
		}
	}

	return items
}

// MultiSelect repeatedly shows the choices not yet picked until the user
// picks [Done] or nothing is left. The result keeps the order of choices.
func MultiSelect(label string, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	picked := make(map[string]bool)

	for items := remaining(choices, picked); len(items) > 1; items = remaining(choices, picked) {
		sel := &promptui.Select{
			Label:    label,
			Items:    items,
			Searcher: prefixSearcher(items, 0),
		}

		idx, value, err := sel.Run()
		if err != nil {
			return nil, aborted(err)
		}

		if idx == 0 {
			break
		}

		picked[value] = true
	}

	var out []string

	for _, c := range listutil.Unique(choices) {
		if picked[c] {
			out = append(out, c)
		}
	}

	return out, nil
}
