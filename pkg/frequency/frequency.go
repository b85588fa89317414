// Package frequency aggregates token counts and exposes them in ascending token order.
package frequency

import (
	"sort"

	"github.com/basedalex/tag-extractor/pkg/stopwords"
)

type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Table is a snapshot of a Counter, sorted strictly ascending by token.
type Table []Entry

// Count returns the count for token, or zero when it was never counted.
func (t Table) Count(token string) int {
	i := sort.Search(len(t), func(i int) bool { return t[i].Token >= token })
	if i < len(t) && t[i].Token == token {
		return t[i].Count
	}

	return 0
}

// Total is the sum of all counts.
func (t Table) Total() int {
	total := 0
	for _, e := range t {
		total += e.Count
	}

	return total
}

// Counter maps tokens to occurrence counts. It is not safe for concurrent use.
type Counter struct {
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Reset drops every count.
func (c *Counter) Reset() {
	c.counts = make(map[string]int)
}

// Ingest counts every token that stop does not contain. A nil filter skips nothing.
func (c *Counter) Ingest(tokens []string, stop stopwords.Filter) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}

	for _, token := range tokens {
		if token == "" {
			continue
		}
		if stop != nil && stop.Contains(token) {
			continue
		}
		c.counts[token]++
	}
}

// Len is the number of distinct tokens.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Snapshot copies the current counts into a Table.
func (c *Counter) Snapshot() Table {
	table := make(Table, 0, len(c.counts))
	for token, count := range c.counts {
		table = append(table, Entry{Token: token, Count: count})
	}

	sort.Slice(table, func(i, j int) bool {
		return table[i].Token < table[j].Token
	})

	return table
}
