package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/basedalex/tag-extractor/internal/session"
	"github.com/basedalex/tag-extractor/pkg/report"
	"github.com/basedalex/tag-extractor/pkg/sink"
	"github.com/basedalex/tag-extractor/pkg/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	formatText  = "text"
	formatTable = "table"
)

type extractOptions struct {
	stopWords string
	output    string
	jsonOut   string
	format    string
	builtin   bool
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	opts := extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <file|url>",
		Short: "Count the tags of a text file or URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatTable {
				return fmt.Errorf("unknown format %q, expected %s or %s", opts.format, formatText, formatTable)
			}

			s, err := ctx.newSession(opts.stopWords, opts.builtin)
			if err != nil {
				return err
			}

			title, lines, err := readInput(cmd, ctx, args[0])
			if err != nil {
				return err
			}
			s.ProcessText(title, lines)

			if opts.format == formatTable {
				fmt.Fprintln(cmd.OutOrStdout(), report.RenderTable(s.Title(), s.Snapshot()))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), s.Render())
			}

			return saveOutputs(ctx, s, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.stopWords, "stop-words", "s", "", "Stop words file, one word per line")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the report to this file")
	cmd.Flags().StringVar(&opts.jsonOut, "json", "", "Write the report as JSON to this file")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Display format: text or table")
	cmd.Flags().BoolVar(&opts.builtin, "builtin", false, "Also skip the built-in English stop words")

	return cmd
}

func readInput(cmd *cobra.Command, ctx *commandContext, input string) (string, []string, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		client := source.NewClient(ctx.cfg.FetchTimeoutDuration())
		lines, err := source.Fetch(cmd.Context(), client, input)
		if err != nil {
			return "", nil, fmt.Errorf("error reading file: %w", err)
		}
		return input, lines, nil
	}

	lines, err := source.ReadLines(input)
	if err != nil {
		return "", nil, fmt.Errorf("error reading file: %w", err)
	}

	return filepath.Base(input), lines, nil
}

func saveOutputs(ctx *commandContext, s *session.Session, opts extractOptions) error {
	if opts.output == "" && opts.jsonOut == "" {
		return nil
	}

	rep, err := s.Report()
	if err != nil {
		return err
	}

	if opts.output != "" {
		path := sink.OutputPath(ctx.cfg.OutputDir, opts.output)
		if err = sink.WriteReport(path, rep.Text()); err != nil {
			return fmt.Errorf("error saving tags: %w", err)
		}
		log.Infof("tags saved to %s", path)
	}

	if opts.jsonOut != "" {
		path := sink.OutputPath(ctx.cfg.OutputDir, opts.jsonOut)
		if err = sink.WriteJSON(path, rep); err != nil {
			return fmt.Errorf("error saving tags: %w", err)
		}
		log.Infof("tags saved to %s", path)
	}

	return nil
}
