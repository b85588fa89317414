// Package session holds the state of one tagging session: the counts for the current
// text, the active stop words and the name of the text they came from.
package session

import (
	"errors"

	"github.com/basedalex/tag-extractor/pkg/frequency"
	"github.com/basedalex/tag-extractor/pkg/report"
	"github.com/basedalex/tag-extractor/pkg/stopwords"
	"github.com/basedalex/tag-extractor/pkg/words"
	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

var ErrNoTags = errors.New("no tags to save, process a text first")

// Session is not safe for concurrent use.
type Session struct {
	clock   clock.Clock
	counter *frequency.Counter
	stop    *stopwords.Set
	builtin bool
	title   string
	loaded  bool
}

type Option func(*Session)

// WithClock replaces the wall clock used to stamp reports.
func WithClock(c clock.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithBuiltinStopWords also filters snowball's English stop list.
func WithBuiltinStopWords() Option {
	return func(s *Session) {
		s.builtin = true
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		clock:   clock.New(),
		counter: frequency.NewCounter(),
		stop:    stopwords.New(nil),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) filter() stopwords.Filter {
	if s.builtin {
		return stopwords.Union(s.stop, stopwords.English())
	}

	return s.stop
}

// ProcessText clears previous counts and counts every line of a new text.
func (s *Session) ProcessText(title string, lines []string) {
	s.counter.Reset()

	filter := s.filter()
	tokens := 0
	for _, line := range lines {
		t := words.Normalize(line)
		tokens += len(t)
		s.counter.Ingest(t, filter)
	}

	s.title = title
	s.loaded = true

	log.WithFields(log.Fields{
		"title":  title,
		"lines":  len(lines),
		"tokens": tokens,
		"unique": s.counter.Len(),
	}).Info("processed text")
}

// LoadStopWords replaces the stop words and returns how many entries are stored.
// Counts already taken are left alone until the text is processed again.
func (s *Session) LoadStopWords(lines []string) int {
	s.stop.Load(lines)

	log.WithField("count", s.stop.Len()).Info("loaded stop words")

	return s.stop.Len()
}

func (s *Session) StopWordCount() int {
	return s.stop.Len()
}

func (s *Session) Title() string {
	return s.title
}

func (s *Session) Snapshot() frequency.Table {
	return s.counter.Snapshot()
}

func (s *Session) HasTags() bool {
	return s.counter.Len() > 0
}

// Render returns the canonical report for the current text.
func (s *Session) Render() string {
	return report.Render(s.title, s.counter.Snapshot())
}

// Report builds an exportable report, or ErrNoTags when nothing was counted.
func (s *Session) Report() (report.Report, error) {
	if !s.HasTags() {
		return report.Report{}, ErrNoTags
	}

	return report.New(s.title, s.counter.Snapshot(), s.stop.Len(), s.clock.Now()), nil
}

// Loaded reports whether any text has been processed yet.
func (s *Session) Loaded() bool {
	return s.loaded
}
