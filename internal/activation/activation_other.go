//go:build !windows

package activation

import "errors"

// activateApplication reports that no platform activation service exists;
// callers proceed to the shell fallback unchanged.
func activateApplication(appID string) (int32, error) {
	return 0, errors.New("application activation service is unavailable on this platform")
}
