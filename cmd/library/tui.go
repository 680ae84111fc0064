package cmd

import (
	"github.com/kerbaras/library/pkg/app"
	"github.com/kerbaras/library/pkg/config"
	"github.com/spf13/cobra"
)

func newTUICmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the catalog in a full-screen terminal UI",
		Long:  "Same catalog and menu as the default mode, drawn as a full-screen terminal interface.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(*cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			return app.NewApp(s.catalog, s.msgs).Run(cmd.Context())
		},
	}
}
