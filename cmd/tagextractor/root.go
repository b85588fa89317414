package main

import (
	"fmt"

	"github.com/basedalex/tag-extractor/internal/session"
	"github.com/basedalex/tag-extractor/pkg/config"
	"github.com/basedalex/tag-extractor/pkg/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type commandContext struct {
	configPath *string
	cfg        *config.Config
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	if *c.configPath == "" {
		c.cfg = config.Default()
	} else {
		cfg, err := config.Load(*c.configPath)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		c.cfg = cfg
	}

	level, err := log.ParseLevel(c.cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	log.SetLevel(level)

	return c.cfg, nil
}

// newSession builds a session with the configured stop words already loaded.
// stopWordsPath overrides the file named in the config.
func (c *commandContext) newSession(stopWordsPath string, builtin bool) (*session.Session, error) {
	cfg := c.cfg

	var opts []session.Option
	if builtin || cfg.BuiltinStopWords {
		opts = append(opts, session.WithBuiltinStopWords())
	}
	s := session.New(opts...)

	if stopWordsPath == "" {
		stopWordsPath = cfg.StopWordsFile
	}
	if stopWordsPath != "" {
		lines, err := source.ReadLines(stopWordsPath)
		if err != nil {
			return nil, fmt.Errorf("error reading stop words file: %w", err)
		}
		log.Infof("stop words loaded successfully, total stop words: %d", s.LoadStopWords(lines))
	}

	return s, nil
}

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := &commandContext{configPath: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "tagextractor",
		Short:         "Extract keyword frequencies from text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd
}
