package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/logging"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/store"
	"github.com/sirupsen/logrus"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initialize logging, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	if err := logging.Setup(cfg.Log); err != nil {
		return nil, nil, err
	}
	if err := cfg.Policy.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid policy configuration: %w", err)
	}

	dbPath, err := DatabasePath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS, store.WithSharePrecision(cfg.Policy.SharePrecision))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logrus.WithField("path", dbPath).Debug("database opened")

	svc := service.NewService(dbStore, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logrus.WithError(err).Error("error closing database")
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

// DatabasePath returns the configured database file, defaulting to the
// application data directory.
func DatabasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return ExpandPath(cfg.Database.Path)
	}

	appDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, "keasec.db"), nil
}

func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".keasec"), nil
	}

	return filepath.Join(configDir, "keasec"), nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	if path[1] == '/' || path[1] == '\\' {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
