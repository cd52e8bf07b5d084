package views

import (
	"fmt"

	"github.com/hance08/keasec/internal/config"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool
	DefaultCurrency string
	AppDataDir      string
	Log             config.LogConfig
	Policy          config.Policy
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Default Currency", data.DefaultCurrency},
		{"AppData Directory", data.AppDataDir},
		{"Log Level", fmt.Sprintf("%s (%s)", data.Log.Level, data.Log.Format)},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	p := data.Policy
	strict := "warn only"
	if p.StrictPlausibility {
		strict = "reject"
	}
	policyData := pterm.TableData{
		{"Policy", "Value"},
		{"Balance tolerance", p.BalanceTolerance.String()},
		{"Date tolerance", fmt.Sprintf("%d days", p.DateToleranceDays)},
		{"Split factor band", fmt.Sprintf("%s .. %s", p.SplitFactorMin, p.SplitFactorMax)},
		{"Added shares band", fmt.Sprintf("%s .. %s", p.AddSharesMin, p.AddSharesMax)},
		{"Share precision", fmt.Sprintf("%d places", p.SharePrecision)},
		{"Out-of-band values", strict},
	}
	pterm.Println()
	return pterm.DefaultTable.WithHasHeader().WithData(policyData).Render()
}
