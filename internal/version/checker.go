// Package version reports the build version and checks for newer releases.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Version is overridden at build time with -ldflags "-X ...version.Version=x.y.z"
var Version = "dev"

const checkTimeout = 5 * time.Second

// releasesURL is a variable so tests can point it at a local server
var releasesURL = "https://api.github.com/repos/studiowebux/tcpjson/releases/latest"

type githubRelease struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Update describes the outcome of a release check
type Update struct {
	Available bool
	Latest    string
	URL       string
}

// CheckForUpdate asks the release feed for the latest tag and compares it to current
func CheckForUpdate(ctx context.Context, current string) (Update, error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return Update{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "tcpjson/"+current)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Update{}, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Update{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Update{}, fmt.Errorf("failed to decode response: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	update := Update{Latest: latest, URL: release.HTMLURL}
	if latest != "" && isNewerVersion(latest, strings.TrimPrefix(current, "v")) {
		update.Available = true
	}
	return update, nil
}

// isNewerVersion compares two dotted versions and returns true if latest > current.
// Pre-release and build suffixes are ignored.
func isNewerVersion(latest, current string) bool {
	latestParts := parseVersion(latest)
	currentParts := parseVersion(current)

	n := max(len(latestParts), len(currentParts))
	for i := 0; i < n; i++ {
		l, c := partAt(latestParts, i), partAt(currentParts, i)
		if l != c {
			return l > c
		}
	}
	return false
}

func partAt(parts []int, i int) int {
	if i < len(parts) {
		return parts[i]
	}
	return 0
}

// parseVersion splits "1.2.3-beta" into [1 2 3]
func parseVersion(version string) []int {
	if idx := strings.IndexAny(version, "-+"); idx != -1 {
		version = version[:idx]
	}

	parts := strings.Split(version, ".")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		result = append(result, num)
	}
	return result
}
