package words

import (
	"regexp"
	"strings"
)

// nonLetters matches everything the normalizer throws away. Only ASCII letters and the
// plain space survive; tabs, digits, punctuation and non-ASCII letters are deleted
// outright rather than turned into separators.
var nonLetters = regexp.MustCompile("[^a-zA-Z ]+")

// Normalize turns a raw line of text into lowercase tokens.
func Normalize(line string) []string {
	if len(line) == 0 {
		return nil
	}

	cleaned := strings.ToLower(nonLetters.ReplaceAllString(line, ""))

	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return nil
	}

	return tokens
}

// NormalizeLines normalizes every line in order and returns all tokens.
func NormalizeLines(lines []string) []string {
	var res []string
	for _, line := range lines {
		res = append(res, Normalize(line)...)
	}

	return res
}
