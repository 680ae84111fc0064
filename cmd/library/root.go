package cmd

import (
	"github.com/kerbaras/library/pkg/config"
	"github.com/kerbaras/library/pkg/console"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "library",
		Short: "A small in-memory book catalog",
		Long: `Keep track of a small collection of books from a text menu.

Add books, borrow and return them, and list the whole catalog or only the
books on the shelf. Nothing is saved: the catalog is gone when you quit.`,
		Example: `  # Start the menu in English
  library

  # French messages, DuckDB in-memory store
  library --lang fr --store duckdb

  # Full-screen interface
  library tui`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			c := console.New(s.catalog, s.msgs, cmd.InOrStdin(), cmd.OutOrStdout(), s.logger)
			return c.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&cfg.Store, "store", cfg.Store, "Catalog store: memory or duckdb (both in-memory)")
	cmd.PersistentFlags().StringVar(&cfg.Lang, "lang", cfg.Lang, "Message language (e.g. en, fr)")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	cmd.AddCommand(newTUICmd(&cfg))

	return cmd
}
