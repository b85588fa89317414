package sink

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/basedalex/tag-extractor/pkg/frequency"
	"github.com/basedalex/tag-extractor/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.txt")
	text := "Tags and Frequencies for: a.txt\n\nfox                 : 2\n"

	require.NoError(t, WriteReport(path, text))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(data))
}

func TestWriteReportFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tags.txt")

	err := WriteReport(path, "x")
	assert.ErrorIs(t, err, ErrSinkWriteFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.json")
	r := report.New("a.txt", frequency.Table{{Token: "fox", Count: 2}, {Token: "runs", Count: 1}}, 1,
		time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	require.NoError(t, WriteJSON(path, r))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, r.Title, got.Title)
	assert.Equal(t, r.Entries, got.Entries)
	assert.True(t, r.GeneratedAt.Equal(got.GeneratedAt))
}

func TestWriteJSONFailure(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "no", "dir.json"), report.Report{})

	assert.ErrorIs(t, err, ErrSinkWriteFailed)
}

func TestReadJSONErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadJSON(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = ReadJSON(bad)
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "tags.txt"), OutputPath("out", "tags.txt"))
	assert.Equal(t, "tags.txt", OutputPath("", "tags.txt"))
	assert.Equal(t, filepath.Join("sub", "tags.txt"), OutputPath("out", filepath.Join("sub", "tags.txt")))
	assert.Equal(t, "/abs/tags.txt", OutputPath("out", "/abs/tags.txt"))
}
