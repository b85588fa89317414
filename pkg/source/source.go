// Package source reads the text that gets tagged, either from disk or over HTTP.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const clientTimeout = 10

var ErrSourceUnavailable = errors.New("source unavailable")

// ReadLines returns the lines of the file at path in file order.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	return ReadLinesFrom(file)
}

// ReadLinesFrom splits r into lines without any limit on line length. Line endings
// ("\n" or "\r\n") are dropped.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	lines := make([]string, 0)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
	}

	return lines, nil
}

// NewClient returns the HTTP client used by Fetch. A zero timeout falls back to the
// package default.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = clientTimeout * time.Second
	}

	return &http.Client{
		Timeout: timeout,
	}
}

// Fetch downloads a remote text document and splits it into lines.
func Fetch(ctx context.Context, client *http.Client, url string) ([]string, error) {
	if client == nil {
		client = NewClient(0)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't make request: %w", ErrSourceUnavailable, err)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: problem getting text from url: %w", ErrSourceUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: couldn't get text from url %s: status %d", ErrSourceUnavailable, url, res.StatusCode)
	}

	return ReadLinesFrom(res.Body)
}
