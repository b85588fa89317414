package main

import (
	"fmt"

	"github.com/basedalex/tag-extractor/internal/db"
	"github.com/basedalex/tag-extractor/internal/router"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var stopWords string
	var builtin bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tagging API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(stopWords, builtin)
			if err != nil {
				return err
			}

			if ctx.cfg.DSN == "" {
				log.Warn("pg_dsn is empty, reports will not be stored")
				return router.NewServer(cmd.Context(), ctx.cfg, s, nil)
			}

			pg, err := db.NewPostgres(cmd.Context(), ctx.cfg.DSN)
			if err != nil {
				return fmt.Errorf("error connecting to database: %w", err)
			}
			defer pg.Close()

			if err = pg.Migrate(cmd.Context()); err != nil {
				return err
			}

			return router.NewServer(cmd.Context(), ctx.cfg, s, pg)
		},
	}

	cmd.Flags().StringVarP(&stopWords, "stop-words", "s", "", "Stop words file, one word per line")
	cmd.Flags().BoolVar(&builtin, "builtin", false, "Also skip the built-in English stop words")

	return cmd
}
