package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/basedalex/tag-extractor/pkg/frequency"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	headerPrefix = "Tags and Frequencies for: "
	tokenWidth   = 20
	newline      = "\n"
)

// Render produces the canonical text report. The same text is shown on screen and
// written to files.
func Render(title string, t frequency.Table) string {
	var b strings.Builder

	b.WriteString(headerPrefix)
	b.WriteString(title)
	b.WriteString(newline)
	b.WriteString(newline)

	for _, e := range t {
		fmt.Fprintf(&b, "%-*s: %d", tokenWidth, e.Token, e.Count)
		b.WriteString(newline)
	}

	return b.String()
}

// RenderTable draws the entries as a terminal table.
func RenderTable(title string, t frequency.Table) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(headerPrefix + title)
	tw.AppendHeader(table.Row{"Tag", "Frequency"})

	for _, e := range t {
		tw.AppendRow(table.Row{e.Token, strconv.Itoa(e.Count)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// Report is a snapshot ready to be exported or stored.
type Report struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	StopWords   int             `json:"stop_words"`
	GeneratedAt time.Time       `json:"generated_at"`
	Entries     frequency.Table `json:"entries"`
}

func New(title string, t frequency.Table, stopWords int, now time.Time) Report {
	entries := make(frequency.Table, len(t))
	copy(entries, t)

	return Report{
		ID:          uuid.NewString(),
		Title:       title,
		StopWords:   stopWords,
		GeneratedAt: now.UTC(),
		Entries:     entries,
	}
}

// Text renders the report in the canonical format.
func (r Report) Text() string {
	return Render(r.Title, r.Entries)
}
