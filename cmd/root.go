package cmd

import (
	"io/fs"
	"os"

	"github.com/hance08/keasec/cmd/account"
	"github.com/hance08/keasec/cmd/transaction"
	"github.com/hance08/keasec/internal/app"
	"github.com/hance08/keasec/internal/errhandler"
	"github.com/hance08/keasec/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	os.Exit(run(migrations, os.Args[1:]))
}

func run(migrations fs.FS, args []string) int {
	cfg, err := initConfig(configFileFromArgs(args))
	if err != nil {
		return errhandler.HandleError(err)
	}

	if cfg.Defaults.Currency == "" {
		currency, err := initWizard()
		if err != nil {
			return errhandler.HandleError(err)
		}
		cfg.Defaults.Currency = currency
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		return errhandler.HandleError(err)
	}
	defer cleanup()

	rootCmd := newRootCmd(application.Service)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return errhandler.HandleError(err)
	}
	return 0
}

func newRootCmd(svc *service.Service) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "keasec",
		Short: "keasec records securities transactions in a double-entry ledger",
		Long: `keasec records stock purchases, dividends and stock splits as balanced
double-entry transactions, and merges duplicate transactions after an import.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// read before cobra parses, see configFileFromArgs
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(svc))
	rootCmd.AddCommand(transaction.NewTransactionCmd(svc))

	rootCmd.AddCommand(NewBuyCmd(svc))
	rootCmd.AddCommand(NewDividendCmd(svc))
	rootCmd.AddCommand(NewSplitCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc))

	return rootCmd
}
