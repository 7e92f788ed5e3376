package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"librarylink/internal/appindex"
	"librarylink/internal/pshell"
)

var appsSearch string

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List registered applications and their identifiers",
	Args:  cobra.NoArgs,
	RunE:  runApps,
}

func init() {
	appsCmd.Flags().StringVar(&appsSearch, "search", "", "filter applications by name substring")
	rootCmd.AddCommand(appsCmd)
}

func runApps(cmd *cobra.Command, args []string) error {
	shell := pshell.New(cfg.Shell.PowerShell)

	apps, err := appindex.New(shell).List(cmd.Context(), appsSearch)
	if err != nil {
		out.Error("Error finding applications: %v", err)
		return nil
	}
	if len(apps) == 0 {
		out.Info("No applications found.")
		return nil
	}

	out.Header(fmt.Sprintf("Registered applications (%d)", len(apps)))
	table := out.NewTable("Name", "App ID")
	for _, app := range apps {
		table.AddRow(app.Name, app.AppID)
	}
	table.Render()
	return nil
}
