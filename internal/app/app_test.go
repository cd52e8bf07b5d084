package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "db", "keasec.db")

	application, cleanup, err := NewApp(cfg, migrations.FS)
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, application.Service.Securities)
	assert.NotNil(t, application.Service.Reconciler)
	assert.FileExists(t, cfg.Database.Path)
}

func TestNewApp_RejectsBadPolicy(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "keasec.db")
	cfg.Policy.SplitFactorMax = decimal.RequireFromString("0.01")

	_, _, err := NewApp(cfg, migrations.FS)
	assert.ErrorContains(t, err, "invalid policy configuration")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/ledger/keasec.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "ledger", "keasec.db"), got)

	got, err = ExpandPath("/tmp/keasec.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/keasec.db", got)
}
