package session

import (
	"testing"
	"time"

	"github.com/basedalex/tag-extractor/pkg/frequency"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessText(t *testing.T) {
	s := New()
	assert.Equal(t, 1, s.LoadStopWords([]string{"the"}))

	s.ProcessText("fox.txt", []string{"The Quick fox, the QUICK fox runs! 123"})

	assert.True(t, s.Loaded())
	assert.True(t, s.HasTags())
	assert.Equal(t, "fox.txt", s.Title())
	assert.Equal(t, frequency.Table{
		{Token: "fox", Count: 2},
		{Token: "quick", Count: 2},
		{Token: "runs", Count: 1},
	}, s.Snapshot())
	assert.Equal(t, "Tags and Frequencies for: fox.txt\n\n"+
		"fox                 : 2\n"+
		"quick               : 2\n"+
		"runs                : 1\n", s.Render())
}

func TestProcessTextResets(t *testing.T) {
	s := New()
	s.ProcessText("a", []string{"one two"})
	s.ProcessText("b", []string{"three"})

	assert.Equal(t, "b", s.Title())
	assert.Equal(t, frequency.Table{{Token: "three", Count: 1}}, s.Snapshot())
}

func TestStopWordsApplyOnReprocess(t *testing.T) {
	lines := []string{"the cat and the hat"}
	s := New()
	s.ProcessText("hat.txt", lines)
	assert.Equal(t, 2, s.Snapshot().Count("the"))

	s.LoadStopWords([]string{" THE ", "and", ""})
	assert.Equal(t, 3, s.StopWordCount())
	assert.Equal(t, 2, s.Snapshot().Count("the"))

	s.ProcessText("hat.txt", lines)
	assert.Equal(t, 0, s.Snapshot().Count("the"))
	assert.Equal(t, 0, s.Snapshot().Count("and"))
	assert.Equal(t, 1, s.Snapshot().Count("cat"))
}

func TestBuiltinStopWords(t *testing.T) {
	s := New(WithBuiltinStopWords())
	s.LoadStopWords([]string{"fox"})
	s.ProcessText("t", []string{"the quick fox"})

	assert.Equal(t, frequency.Table{{Token: "quick", Count: 1}}, s.Snapshot())
}

func TestEmptyText(t *testing.T) {
	s := New()
	s.ProcessText("empty.txt", []string{""})

	assert.True(t, s.Loaded())
	assert.False(t, s.HasTags())
	assert.Equal(t, "Tags and Frequencies for: empty.txt\n\n", s.Render())

	_, err := s.Report()
	assert.ErrorIs(t, err, ErrNoTags)
}

func TestReport(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC))

	s := New(WithClock(mock))
	s.LoadStopWords([]string{"a", "b"})
	s.ProcessText("doc", []string{"go go gopher"})

	r, err := s.Report()
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "doc", r.Title)
	assert.Equal(t, 2, r.StopWords)
	assert.Equal(t, time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC), r.GeneratedAt)
	assert.Equal(t, s.Render(), r.Text())
}
