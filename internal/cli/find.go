package cli

import (
	"github.com/spf13/cobra"

	"librarylink/internal/procscan"
)

var findCmd = &cobra.Command{
	Use:   "find <directory>",
	Short: "Find a live process whose executable is under a directory",
	Long: `Find scans the process table and prints the first process whose
executable path starts with the given directory. The comparison is
case-insensitive; enumeration order is OS-defined.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	dir := args[0]
	scanner := procscan.NewScanner()

	pid, err := scanner.FindInDirectory(dir)
	if err != nil {
		out.Warning("No process found under %s", dir)
		return nil
	}

	out.Success("Found process %d", pid)
	if info, err := scanner.Resolve(pid); err == nil {
		out.KeyValue("Name", info.Name)
		out.KeyValue("Path", info.Path)
	}
	return nil
}
