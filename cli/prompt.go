// Package cli holds the terminal helpers used by the practice command:
// promptui-based prompts and menus, and boxed banners.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

var (
	// ErrAborted is returned when the user presses ^C or ^D at a prompt.
	ErrAborted = errors.New("aborted by user")

	errEmptyInput = errors.New("you must enter something")
)

// aborted maps promptui's interrupt and EOF errors to ErrAborted.
func aborted(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrAborted
	}

	return err
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyInput
	}

	return nil
}

func isInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid integer: %w", err)
	}

	return nil
}

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, aborted(err)
	}

	return true, nil
}

// Prompt asks for a line of text, pre-filled with dfl. Empty answers are
// rejected.
func Prompt(label, dfl string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   dfl,
		AllowEdit: true,
		Validate:  nonEmpty,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	out, err := prompt.Run()
	if err != nil {
		return "", aborted(err)
	}

	return strings.TrimSpace(out), nil
}

// PromptInt asks for an integer, pre-filled with dfl.
func PromptInt(label string, dfl int) (int, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   strconv.Itoa(dfl),
		AllowEdit: true,
		Validate:  isInt,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, aborted(err)
	}

	return strconv.Atoi(strings.TrimSpace(txt))
}
