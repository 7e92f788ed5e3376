// Package appindex queries the platform application registry through the
// host shell.
package appindex

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"librarylink/internal/pshell"
)

// listCommand emits registered start-menu applications as tab-separated
// name/app-id pairs.
const listCommand = "Get-StartApps | ForEach-Object { \"$($_.Name)`t$($_.AppID)\" }"

// Entry names a registered application and its application identifier.
type Entry struct {
	Name  string
	AppID string
}

// Index lists and describes registered applications.
type Index struct {
	shell pshell.Runner
}

// New creates an Index backed by the given shell.
func New(shell pshell.Runner) *Index {
	return &Index{shell: shell}
}

// List returns registered applications sorted by name. Entries without an
// application identifier (classic desktop applications) are skipped. A
// non-empty search filters names case-insensitively.
func (ix *Index) List(ctx context.Context, search string) ([]Entry, error) {
	out, err := ix.shell.Run(ctx, listCommand)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return parseEntries(out, search), nil
}

func parseEntries(out, search string) []Entry {
	needle := strings.ToLower(search)

	var apps []Entry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, appID, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		appID = strings.TrimSpace(appID)
		if appID == "" {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}

		apps = append(apps, Entry{Name: name, AppID: appID})
	}

	sort.Slice(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})

	return apps
}
