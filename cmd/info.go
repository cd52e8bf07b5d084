package cmd

import (
	"os"

	"github.com/hance08/keasec/internal/app"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path and plausibility policy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := app.DatabasePath(cfg)
	if err != nil {
		return err
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	appDir, err := app.DataDir()
	if err != nil {
		appDir = "Unknown"
	}

	return views.RenderSystemInfo(views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          dbPath,
		DBExists:        dbExists,
		DefaultCurrency: cfg.Defaults.Currency,
		AppDataDir:      appDir,
		Log:             cfg.Log,
		Policy:          cfg.Policy,
	})
}
