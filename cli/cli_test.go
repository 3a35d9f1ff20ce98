package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/amp-labs/daily-dev-lab/envutil"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "PRACTICE_NO_BANNER", "false")

	tests := []struct {
		name  string
		text  string
		width int
		align Alignment
		want  string
	}{
		{
			name:  "left",
			text:  "hi",
			width: 6,
			align: AlignLeft,
			want:  "╒════╕\n│hi  │\n└────┘",
		},
		{
			name:  "center",
			text:  "hi",
			width: 7,
			align: AlignCenter,
			want:  "╒═════╕\n│ hi  │\n└─────┘",
		},
		{
			name:  "right",
			text:  "hi",
			width: 6,
			align: AlignRight,
			want:  "╒════╕\n│  hi│\n└────┘",
		},
		{
			name:  "truncated",
			text:  "abcdefgh",
			width: 6,
			align: AlignLeft,
			want:  "╒════╕\n│abc…│\n└────┘",
		},
		{
			name:  "multi line",
			text:  "a\r\nbb",
			width: 4,
			align: AlignLeft,
			want:  "╒══╕\n│a │\n│bb│\n└──┘",
		},
		{name: "too narrow", text: "hi", width: 2, align: AlignLeft, want: ""},
		{name: "bad alignment", text: "hi", width: 6, align: Alignment(9), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Banner(ctx, tt.text, tt.width, tt.align))
		})
	}
}

func TestBanner_Suppressed(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "PRACTICE_NO_BANNER", "true")

	assert.Equal(t, "plain\n", Banner(ctx, "plain", 40, AlignCenter))
}

func TestDivider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "┠───┨\n", Divider(5))
	assert.Equal(t, "\n", Divider(1))
}

func TestParseDimensions(t *testing.T) {
	t.Parallel()

	rows, cols, err := parseDimensions("24 80\n")
	require.NoError(t, err)
	assert.Equal(t, 24, rows)
	assert.Equal(t, 80, cols)

	_, _, err = parseDimensions("24")
	require.Error(t, err)

	_, _, err = parseDimensions("x 80")
	require.Error(t, err)
}

func TestAborted(t *testing.T) {
	t.Parallel()

	other := fmt.Errorf("boom")

	require.ErrorIs(t, aborted(promptui.ErrInterrupt), ErrAborted)
	require.ErrorIs(t, aborted(promptui.ErrEOF), ErrAborted)
	require.ErrorIs(t, aborted(other), other)
	require.NoError(t, aborted(nil))
}

func TestValidators(t *testing.T) {
	t.Parallel()

	require.NoError(t, nonEmpty("x"))
	require.ErrorIs(t, nonEmpty("   "), errEmptyInput)

	require.NoError(t, isInt(" 42 "))
	require.NoError(t, isInt("-3"))
	require.Error(t, isInt("4.2"))
}

func TestPrefixSearcher(t *testing.T) {
	t.Parallel()

	items := []string{doneItem, "Bubble sort", "binary search", "Quick sort"}
	search := prefixSearcher(items, 0)

	assert.True(t, search("b", 1))
	assert.True(t, search("BIN", 2))
	assert.False(t, search("b", 3))
	assert.False(t, search("", 1))
	assert.False(t, search("[", 0))
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	choices := []string{"quick", "bubble", "quick", "natural"}

	assert.Equal(t, []string{doneItem, "quick", "bubble", "natural"}, remaining(choices, nil))
	assert.Equal(t, []string{doneItem, "natural"},
		remaining(choices, map[string]bool{"quick": true, "bubble": true}))
	assert.Len(t, remaining(choices, map[string]bool{"quick": true, "bubble": true, "natural": true}), 1)
}

func TestEmptyMenus(t *testing.T) {
	t.Parallel()

	v, err := Select("pick")
	require.NoError(t, err)
	assert.Empty(t, v)

	vs, err := MultiSelect("pick")
	require.NoError(t, err)
	assert.Nil(t, vs)
}

func TestGraphicWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, graphicWidth("a\tbc"))
	assert.Equal(t, 2, graphicWidth("é✓"))
	assert.Equal(t, "ab…", strings.TrimSpace(pad("abcdef", 3, AlignLeft)))
}
