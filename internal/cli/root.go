// Package cli provides the librarylink commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"librarylink/internal/config"
	"librarylink/internal/logging"
	"librarylink/internal/ui"
)

var (
	cfg    *config.Config
	logger *zap.Logger
	out    *ui.UI
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "librarylink",
	Short: "Launch and supervise registered applications",
	Long: `librarylink launches an application by its application identifier and
watches the resulting process. When a short-lived bootstrap process exits
while a worker continues under the same install directory, the worker is
re-acquired and watching continues until no process under the directory
remains.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		out = ui.New()
		cfg = config.LoadOrDefault()

		var err error
		logger, err = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
		if err != nil {
			logger = logging.NewDefault()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = "0.1.0"
}
