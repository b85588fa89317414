package frequency

import (
	"testing"

	"github.com/basedalex/tag-extractor/pkg/stopwords"
	"github.com/basedalex/tag-extractor/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterIngest(t *testing.T) {
	c := NewCounter()
	tokens := words.Normalize("The Quick fox, the QUICK fox runs! 123")

	c.Ingest(tokens, stopwords.New([]string{"the"}))

	expected := Table{
		{Token: "fox", Count: 2},
		{Token: "quick", Count: 2},
		{Token: "runs", Count: 1},
	}
	assert.Equal(t, expected, c.Snapshot())
	assert.Equal(t, 3, c.Len())
}

func TestCounterStopWordsNeverCounted(t *testing.T) {
	c := NewCounter()
	stop := stopwords.New([]string{"a", "of"})

	c.Ingest([]string{"a", "lot", "of", "a", "words"}, stop)

	table := c.Snapshot()
	assert.Equal(t, 0, table.Count("a"))
	assert.Equal(t, 0, table.Count("of"))
	assert.Equal(t, 1, table.Count("lot"))
	for _, e := range table {
		assert.False(t, stop.Contains(e.Token))
		assert.GreaterOrEqual(t, e.Count, 1)
	}
}

func TestCounterNilFilterAndEmptyTokens(t *testing.T) {
	c := NewCounter()
	c.Ingest([]string{"", "go", "", "go"}, nil)

	assert.Equal(t, Table{{Token: "go", Count: 2}}, c.Snapshot())
}

func TestCounterZeroValue(t *testing.T) {
	var c Counter
	assert.Empty(t, c.Snapshot())

	c.Ingest([]string{"x"}, nil)
	assert.Equal(t, 1, c.Snapshot().Count("x"))
}

func TestCounterReingest(t *testing.T) {
	tokens := words.NormalizeLines([]string{"alpha beta", "beta gamma gamma gamma"})
	c := NewCounter()

	c.Ingest(tokens, nil)
	first := c.Snapshot()

	c.Ingest(tokens, nil)
	doubled := c.Snapshot()
	require.Len(t, doubled, len(first))
	for i := range first {
		assert.Equal(t, first[i].Token, doubled[i].Token)
		assert.Equal(t, 2*first[i].Count, doubled[i].Count)
	}

	c.Reset()
	assert.Empty(t, c.Snapshot())
	c.Ingest(tokens, nil)
	assert.Equal(t, first, c.Snapshot())
}

func TestSnapshotOrder(t *testing.T) {
	c := NewCounter()
	c.Ingest([]string{"zeta", "alpha", "mu", "beta", "alphabet", "a", "mu"}, nil)

	table := c.Snapshot()
	require.Len(t, table, 6)
	for i := 1; i < len(table); i++ {
		assert.Less(t, table[i-1].Token, table[i].Token)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	c := NewCounter()
	c.Ingest([]string{"one"}, nil)

	table := c.Snapshot()
	c.Ingest([]string{"one", "two"}, nil)

	assert.Equal(t, Table{{Token: "one", Count: 1}}, table)
}

func TestTableHelpers(t *testing.T) {
	table := Table{{Token: "b", Count: 2}, {Token: "d", Count: 5}}

	assert.Equal(t, 2, table.Count("b"))
	assert.Equal(t, 5, table.Count("d"))
	assert.Equal(t, 0, table.Count("c"))
	assert.Equal(t, 0, table.Count("z"))
	assert.Equal(t, 7, table.Total())
	assert.Equal(t, 0, Table(nil).Total())
}

func BenchmarkIngest(b *testing.B) {
	tokens := words.Normalize("I'm following your questions, and the follower brings a bunch of questions to follow")
	stop := stopwords.New([]string{"the", "a", "of", "to", "and"})
	c := NewCounter()

	for i := 0; i < b.N; i++ {
		c.Reset()
		c.Ingest(tokens, stop)
	}
}
