// Package stopwords holds the vocabulary excluded from keyword counting.
package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kljensen/snowball/english"
)

// Filter reports whether a token must be skipped. Tokens are expected to be lowercase.
type Filter interface {
	Contains(token string) bool
}

// Set is a loaded stop-word list. The zero value is an empty set.
type Set struct {
	words map[string]struct{}
}

// New builds a set from raw lines.
func New(lines []string) *Set {
	s := &Set{}
	s.Load(lines)

	return s
}

// Load replaces the whole set with the given lines. Every line is trimmed and
// lowercased; blank lines end up as an empty entry, which never matches a token.
func (s *Set) Load(lines []string) {
	s.words = make(map[string]struct{}, len(lines))

	for _, line := range lines {
		s.words[strings.ToLower(strings.TrimSpace(line))] = struct{}{}
	}
}

// ReadFrom replaces the set with the lines read from r. Lines may be any length.
func (s *Set) ReadFrom(r io.Reader) (int64, error) {
	var (
		lines []string
		n     int64
	)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		n += int64(len(line))
		if len(line) > 0 {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, fmt.Errorf("stopwords: %w", err)
		}
	}

	s.Load(lines)

	return n, nil
}

// Contains is case-sensitive; callers pass lowercase tokens.
func (s *Set) Contains(token string) bool {
	if s == nil {
		return false
	}

	_, ok := s.words[token]

	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.words)
}

// Words returns the stored entries in ascending order.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}

	res := make([]string, 0, len(s.words))
	for w := range s.words {
		res = append(res, w)
	}
	sort.Strings(res)

	return res
}

type englishFilter struct{}

func (englishFilter) Contains(token string) bool {
	return token != "" && english.IsStopWord(token)
}

// English is the built-in English stop list shipped with snowball.
func English() Filter {
	return englishFilter{}
}

type union []Filter

func (u union) Contains(token string) bool {
	for _, f := range u {
		if f != nil && f.Contains(token) {
			return true
		}
	}

	return false
}

// Union matches a token when any of the filters does. Nil filters are ignored.
func Union(filters ...Filter) Filter {
	return union(filters)
}
