package cmd

import (
	"io"
	"log/slog"

	"github.com/kerbaras/library/pkg/config"
	"github.com/kerbaras/library/pkg/data"
	"github.com/kerbaras/library/pkg/locale"
	"github.com/kerbaras/library/pkg/services"
)

// session holds what one run of the program needs: a fresh catalog and the
// message set to talk to the user with.
type session struct {
	repo    data.Repository
	catalog *services.Catalog
	msgs    locale.Messages
	logger  *slog.Logger
}

func newSession(cfg config.Config, logOut io.Writer) (*session, error) {
	logger, err := cfg.Logger(logOut)
	if err != nil {
		return nil, err
	}

	msgs, err := cfg.Messages()
	if err != nil {
		return nil, err
	}

	repo, err := cfg.Repository()
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog ready", "store", cfg.Store, "lang", cfg.Lang)

	return &session{
		repo:    repo,
		catalog: services.NewCatalog(repo, logger),
		msgs:    msgs,
		logger:  logger,
	}, nil
}

func (s *session) Close() error {
	return s.repo.Close()
}
