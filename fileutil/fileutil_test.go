package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Algorithm string   `json:"algorithm"`
	Sizes     []int    `json:"sizes"`
	Tags      []string `json:"tags,omitempty"`
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name:   "default indent",
			indent: DefaultIndent,
			want:   "{\n  \"algorithm\": \"quick\",\n  \"sizes\": [\n    10,\n    100\n  ]\n}",
		},
		{
			name:   "four spaces",
			indent: 4,
			want:   "{\n    \"algorithm\": \"quick\",\n    \"sizes\": [\n        10,\n        100\n    ]\n}",
		},
		{
			name:   "compact",
			indent: 0,
			want:   `{"algorithm":"quick","sizes":[10,100]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "settings.json")
			in := settings{Algorithm: "quick", Sizes: []int{10, 100}}

			require.NoError(t, WriteJSON(path, in, tt.indent))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(raw))

			out, err := ReadJSON[settings](path)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestWriteJSON_Replaces(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")

	require.NoError(t, WriteJSON(path, []int{1, 2, 3, 4, 5}, 0))
	require.NoError(t, WriteJSON(path, []int{9}, 0))

	out, err := ReadJSON[[]int](path)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, out)
}

func TestWriteJSON_Unencodable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")

	require.Error(t, WriteJSON(path, map[string]any{"f": func() {}}, DefaultIndent))

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadJSON_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := ReadJSON[settings](filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"algorithm": `), 0o600))

	_, err = ReadJSON[settings](broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")

	generic, err := ReadJSON[map[string]any](filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Nil(t, generic)
}

func TestListFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"run10.json", "run2.json", "notes.txt", "run1.json", "archive.json.gz"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.json"), 0o700))

	join := func(names ...string) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = filepath.Join(dir, n)
		}

		return out
	}

	tests := []struct {
		name      string
		extension string
		want      []string
	}{
		{name: "by extension", extension: "json", want: join("run1.json", "run2.json", "run10.json")},
		{name: "leading dot", extension: ".json", want: join("run1.json", "run2.json", "run10.json")},
		{name: "text", extension: "txt", want: join("notes.txt")},
		{name: "no match", extension: "csv", want: []string{}},
		{
			name: "everything",
			want: join("archive.json.gz", "notes.txt", "old.json", "run1.json", "run2.json", "run10.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ListFiles(dir, tt.extension)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListFiles_PatternCharsInDir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("names with * and ? are not allowed")
	}

	dir := filepath.Join(t.TempDir(), "runs[2024]*?")
	require.NoError(t, os.Mkdir(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), nil, 0o600))

	got, err := ListFiles(dir, "json")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.json")}, got)
}

func TestListFiles_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := ListFiles(filepath.Join(t.TempDir(), "nope"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestHumanSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int64
		want  string
	}{
		{bytes: 0, want: "0.00 B"},
		{bytes: 1023, want: "1023.00 B"},
		{bytes: 1024, want: "1.00 KB"},
		{bytes: 1536, want: "1.50 KB"},
		{bytes: 1 << 20, want: "1.00 MB"},
		{bytes: 5 << 30, want: "5.00 GB"},
		{bytes: 1 << 40, want: "1.00 TB"},
		{bytes: 1 << 50, want: "1024.00 TB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanSize(tt.bytes), "%d bytes", tt.bytes)
	}
}

func TestFileSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")

	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0o600))

	got, err := FileSize(path)
	require.NoError(t, err)
	assert.Equal(t, "2.00 KB", got)

	_, err = FileSize(filepath.Join(dir, "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
