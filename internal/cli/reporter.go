package cli

import (
	"librarylink/internal/procscan"
	"librarylink/internal/ui"
)

// consoleReporter renders supervision events as console status lines.
type consoleReporter struct {
	ui *ui.UI
}

func (r *consoleReporter) Waiting(pid int32) {
	r.ui.Subtle("Waiting for process %d to terminate...", pid)
}

func (r *consoleReporter) Terminated(pid int32) {
	r.ui.Info("Process %d has terminated", pid)
}

func (r *consoleReporter) OpenFailed(pid int32, err error) {
	r.ui.Error("Failed to open process %d for monitoring: %v", pid, err)
}

func (r *consoleReporter) WaitFailed(pid int32, err error) {
	r.ui.Error("Wait on process %d failed: %v", pid, err)
}

func (r *consoleReporter) UnexpectedWait(pid int32, err error) {
	r.ui.Warning("Unexpected wait result for process %d (%v), continuing to monitor", pid, err)
}

func (r *consoleReporter) Searching(dir string) {
	r.ui.Info("Searching for replacement process in directory: %s", dir)
}

func (r *consoleReporter) Adopted(pid int32, info procscan.ProcessInfo, resolved bool) {
	r.ui.Success("Found replacement process: %d", pid)
	if resolved {
		r.ui.KeyValue("Process name", info.Name)
		r.ui.KeyValue("Process path", info.Path)
	}
	r.ui.Info("Now monitoring process %d", pid)
}

func (r *consoleReporter) NoSuccessor(dir string) {
	r.ui.Warning("No replacement process found in target directory")
	r.ui.Subtle("Exiting monitoring...")
}
