package cli

import (
	"github.com/spf13/cobra"

	"librarylink/internal/activation"
	"librarylink/internal/appindex"
	"librarylink/internal/procscan"
	"librarylink/internal/pshell"
	"librarylink/internal/supervise"
)

var launchCmd = &cobra.Command{
	Use:   "launch <app-id>",
	Short: "Launch an application by identifier and supervise its process",
	Long: `Launch looks up the application's package metadata, activates the
application, and when the activation yields a process id, watches that
process until no successor under its install directory remains.

The exit code is 0 for every defined outcome, including a failed launch:
the end of a supervision session is not an application error.`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	appID := args[0]

	shell := pshell.New(cfg.Shell.PowerShell)

	out.Header("Application launch")
	out.KeyValue("App ID", appID)

	// Informational only; never gates the launch.
	if info, err := appindex.New(shell).Describe(ctx, appID); err != nil {
		out.Subtle("Package metadata unavailable: %v", err)
	} else {
		out.KeyValue("Package", info.Name)
		out.KeyValue("Full name", info.FullName)
		out.KeyValue("Family", info.FamilyName)
		out.KeyValue("Install location", info.InstallLocation)
	}

	launcher := activation.New(shell, activation.WithLogger(logger))
	res := launcher.Launch(ctx, appID)

	switch res.Outcome {
	case activation.OutcomeFailed:
		out.Error("All launch methods failed")
		out.KeyValue("Activation", res.PrimaryErr.Error())
		out.KeyValue("Shell fallback", res.FallbackErr.Error())
		return nil
	case activation.OutcomeUnsupervisable:
		out.Success("Application launched via shell fallback (no process id available)")
		out.Warning("Process supervision is not available for this launch")
		return nil
	}

	out.Success("Application launched, process id %d", res.Pid)

	scanner := procscan.NewScanner()
	info, err := scanner.Resolve(res.Pid)
	if err != nil {
		out.Warning("Could not read metadata for process %d; supervision skipped", res.Pid)
		return nil
	}
	out.KeyValue("Process path", info.Path)
	out.KeyValue("Process name", info.Name)
	out.Info("Monitoring directory: %s", procscan.DirOf(info.Path))

	sup := supervise.New(
		scanner,
		scanner,
		&procscan.Waiter{Poll: cfg.Monitor.WaitPoll},
		supervise.WithReporter(&consoleReporter{ui: out}),
		supervise.WithLogger(logger),
	)
	if err := sup.Run(res.Pid); err != nil {
		out.Warning("Supervision could not start: %v", err)
	}
	return nil
}
