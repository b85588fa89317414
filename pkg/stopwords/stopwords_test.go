package stopwords

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s := New([]string{" Hello ", "WORLD", ""})

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"", "hello", "world"}, s.Words())
	assert.True(t, s.Contains("hello"))
	assert.True(t, s.Contains("world"))
	assert.False(t, s.Contains("Hello"))
	assert.False(t, s.Contains("other"))
}

func TestLoadReplaces(t *testing.T) {
	s := New([]string{"the", "a"})
	s.Load([]string{"an", "AN", " an "})

	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains("the"))
	assert.True(t, s.Contains("an"))

	s.Load(nil)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("an"))
}

func TestZeroAndNilSet(t *testing.T) {
	var zero Set
	assert.False(t, zero.Contains("the"))
	assert.Equal(t, 0, zero.Len())

	var s *Set
	assert.False(t, s.Contains("the"))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Words())
}

func TestReadFrom(t *testing.T) {
	s := New([]string{"old"})

	_, err := s.ReadFrom(strings.NewReader("The\n  and \r\nOF\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("and"))
	assert.True(t, s.Contains("of"))
	assert.False(t, s.Contains("old"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestReadFromError(t *testing.T) {
	s := New([]string{"keep"})

	_, err := s.ReadFrom(failingReader{})
	require.EqualError(t, err, "stopwords: boom")
	assert.True(t, s.Contains("keep"))
}

func TestEnglishAndUnion(t *testing.T) {
	en := English()
	assert.True(t, en.Contains("the"))
	assert.False(t, en.Contains("fox"))
	assert.False(t, en.Contains(""))

	f := Union(New([]string{"fox"}), nil, en)
	assert.True(t, f.Contains("fox"))
	assert.True(t, f.Contains("the"))
	assert.False(t, f.Contains("quick"))

	assert.False(t, Union().Contains("the"))
}

func TestReadFromLongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	s := New(nil)

	_, err := s.ReadFrom(strings.NewReader("the\n" + long + "\nof"))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(long))
	assert.True(t, s.Contains("of"))
}
