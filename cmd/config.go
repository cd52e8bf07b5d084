package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/keasec/internal/app"
	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/ui/prompts"
	"github.com/hance08/keasec/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

// configFileFromArgs finds --config/-c before cobra runs. The config has
// to be loaded first because it decides which database the commands use.
func configFileFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		for _, name := range []string{"--config", "-c"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if value, ok := strings.CutPrefix(arg, name+"="); ok {
				return value
			}
		}
	}
	return ""
}

func setDefaults() {
	defaults := config.NewDefault()
	p := defaults.Policy

	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)
	viper.SetDefault("policy.balance_tolerance", p.BalanceTolerance.String())
	viper.SetDefault("policy.date_tolerance_days", p.DateToleranceDays)
	viper.SetDefault("policy.split_factor_min", "1/20")
	viper.SetDefault("policy.split_factor_max", p.SplitFactorMax.String())
	viper.SetDefault("policy.add_shares_min", p.AddSharesMin.String())
	viper.SetDefault("policy.add_shares_max", p.AddSharesMax.String())
	viper.SetDefault("policy.share_precision", p.SharePrecision)
	viper.SetDefault("policy.strict_plausibility", p.StrictPlausibility)
}

// initConfig loads the config file, environment and defaults. The default
// currency is left empty when nothing sets it so the wizard can ask.
func initConfig(cfgFile string) (*config.Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("KEASEC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := viper.Unmarshal(cfg, viper.DecodeHook(config.DecodeHook())); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if !viper.IsSet("defaults.currency") {
		cfg.Defaults.Currency = ""
	}
	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg, nil
}

func initWizard() (string, error) {
	currency, err := prompts.PromptInitCurrency("USD", validateCurrency)
	if err != nil {
		return "", err
	}

	viper.Set("defaults.currency", currency)

	if err := viper.WriteConfig(); err != nil {
		return "", fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Default currency set to: %s\n", currency)

	return currency, nil
}

func validateCurrency(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("currency code is required")
	}
	return validation.ValidateCurrency(s)
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
