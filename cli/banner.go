package cli

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/amp-labs/daily-dev-lab/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment positions text inside a banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// DefaultTerminalWidth is used when the terminal size can't be determined.
const DefaultTerminalWidth = 80

// borders is the width taken by the two box sides.
const borders = 2

// bannersSuppressed reports whether PRACTICE_NO_BANNER asks for plain output.
func bannersSuppressed(ctx context.Context) bool {
	return envutil.Bool(ctx, "PRACTICE_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

func terminalWidth() int {
	_, cols, err := TerminalDimensions()
	if err != nil || cols == 0 {
		return DefaultTerminalWidth
	}

	return cols
}

// DividerAutoWidth is Divider sized to the terminal.
func DividerAutoWidth() string {
	return Divider(terminalWidth())
}

// BannerAutoWidth is Banner sized to the terminal.
func BannerAutoWidth(ctx context.Context, text string, align Alignment) string {
	return Banner(ctx, text, terminalWidth(), align)
}

// Divider returns a horizontal rule of the given width, newline included.
func Divider(width int) string {
	if width < borders {
		return "\n"
	}

	return dividerLeft + strings.Repeat(dividerMiddle, width-borders) + dividerRight + "\n"
}

// Banner draws text in a box of the given width. Lines that don't fit are
// cut and end with an ellipsis. An unknown alignment or a width too small for
// the box yields "".
func Banner(ctx context.Context, text string, width int, align Alignment) string {
	if bannersSuppressed(ctx) {
		return text + "\n"
	}

	if width <= borders || align < AlignLeft || align > AlignRight {
		return ""
	}

	inner := width - borders
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var sb strings.Builder

	sb.WriteString(boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight + "\n")

	for _, line := range lines {
		sb.WriteString(boxSide + pad(line, inner, align) + boxSide + "\n")
	}

	sb.WriteString(boxBottomLeft + strings.Repeat(boxBottom, inner) + boxBottomRight)

	return sb.String()
}

// graphicWidth counts the printable runes in s.
func graphicWidth(s string) int {
	n := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			n++
		}
	}

	return n
}

// fit cuts s to width printable runes, replacing the last one with an
// ellipsis when anything was dropped.
func fit(s string, width int) (string, int) {
	n := graphicWidth(s)
	if n <= width {
		return s, n
	}

	var sb strings.Builder

	kept := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if kept == width-1 {
				break
			}

			kept++
		}

		sb.WriteRune(r)
	}

	sb.WriteString(ellipsis)

	return sb.String(), kept + 1
}

func pad(text string, width int, align Alignment) string {
	str, n := fit(text, width)
	gap := width - n

	switch align {
	case AlignCenter:
		left := gap / 2 //nolint:mnd

		return strings.Repeat(" ", left) + str + strings.Repeat(" ", gap-left)
	case AlignRight:
		return strings.Repeat(" ", gap) + str
	default:
		return str + strings.Repeat(" ", gap)
	}
}

func stty() (string, error) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return "", err
	}

	defer tty.Close() //nolint:errcheck

	cmd := exec.Command("stty", "size")
	cmd.Stdin = tty

	out, err := cmd.Output()

	return string(out), err
}

// parseDimensions reads stty's "rows columns" output.
func parseDimensions(out string) (int, int, error) {
	fields := strings.Fields(out)
	if len(fields) != 2 { //nolint:mnd
		return 0, 0, strconv.ErrSyntax
	}

	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}

	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// TerminalDimensions returns (rows, cols, err).
func TerminalDimensions() (int, int, error) {
	out, err := stty()
	if err != nil {
		return 0, 0, err
	}

	return parseDimensions(out)
}
