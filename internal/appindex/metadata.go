package appindex

import (
	"context"
	"fmt"
	"strings"
)

// PackageInfo describes the installed package backing an application
// identifier. Informational only.
type PackageInfo struct {
	Name            string
	FullName        string
	FamilyName      string
	InstallLocation string
}

// FamilyOf extracts the package family from an application identifier, the
// segment before the '!' separator. An identifier without a separator is
// returned whole.
func FamilyOf(appID string) string {
	if family, _, ok := strings.Cut(appID, "!"); ok {
		return family
	}
	return appID
}

// Describe looks up package metadata for the application identifier.
// Callers treat failure as non-fatal: the lookup never gates a launch.
func (ix *Index) Describe(ctx context.Context, appID string) (PackageInfo, error) {
	family := strings.ReplaceAll(FamilyOf(appID), "'", "''")
	command := fmt.Sprintf(
		"Get-AppxPackage | Where-Object { $_.PackageFamilyName -eq '%s' } | Select-Object -First 1 | ForEach-Object { \"$($_.Name)`t$($_.PackageFullName)`t$($_.PackageFamilyName)`t$($_.InstallLocation)\" }",
		family)

	out, err := ix.shell.Run(ctx, command)
	if err != nil {
		return PackageInfo{}, fmt.Errorf("query package metadata: %w", err)
	}

	info, ok := parsePackageInfo(out)
	if !ok {
		return PackageInfo{}, fmt.Errorf("no installed package with family %q", FamilyOf(appID))
	}
	return info, nil
}

func parsePackageInfo(out string) (PackageInfo, bool) {
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
		if len(fields) < 4 {
			continue
		}
		return PackageInfo{
			Name:            strings.TrimSpace(fields[0]),
			FullName:        strings.TrimSpace(fields[1]),
			FamilyName:      strings.TrimSpace(fields[2]),
			InstallLocation: strings.TrimSpace(fields[3]),
		}, true
	}
	return PackageInfo{}, false
}
