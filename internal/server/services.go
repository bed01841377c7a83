package server

import (
	"fmt"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"github.com/vaultmd/vaultd/internal/dailynote"
	"github.com/vaultmd/vaultd/internal/db"
	"github.com/vaultmd/vaultd/internal/server/journal"
	"github.com/vaultmd/vaultd/internal/vault"
)

const journalFile = "journal.db"

type Services struct {
	Vault   *vault.Vault
	Daily   *dailynote.Service
	Journal *journal.Service

	db *sqlx.DB
}

// NewServices opens the vault and wires the services around it. The
// revision journal lives in the vault's metadata directory, next to
// the lock file and settings.
func NewServices(config *Config) (*Services, error) {
	v, err := vault.Open(config.Vault.Location)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	database, err := db.NewSqliteDB(
		db.WithPath(filepath.Join(v.MetadataDir(), journalFile)),
		db.WithMaxOpenConns(1),
	)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	journalSvc, err := journal.NewService(database)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("init journal: %w", err)
	}

	return &Services{
		Vault:   v,
		Daily:   dailynote.NewService(v),
		Journal: journalSvc,
		db:      database,
	}, nil
}

func (s *Services) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close journal db: %w", err)
	}
	return nil
}
