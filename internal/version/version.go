package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Path is where the server exposes its build information
const Path = "/api/v1/version"

// These variables are set at build time via -ldflags
var (
	Version   = "dev"     // Set via: -ldflags "-X github.com/webcraftstudio/webcraft/internal/version.Version=v1.0.0"
	BuildTime = "unknown" // Set via: -ldflags "-X github.com/webcraftstudio/webcraft/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
	GitCommit = "unknown" // Set via: -ldflags "-X github.com/webcraftstudio/webcraft/internal/version.GitCommit=$(git rev-parse HEAD)"
)

// BuildInfo contains comprehensive build information
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo returns complete build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Info returns a formatted version info string for CLI output
func Info() string {
	return GetBuildInfo().String()
}

func (b BuildInfo) String() string {
	if b.BuildTime == "unknown" {
		return fmt.Sprintf("%s (development build)", b.Version)
	}

	buildTime, err := time.Parse(time.RFC3339, b.BuildTime)
	if err != nil {
		return fmt.Sprintf("%s (built %s)", b.Version, b.BuildTime)
	}

	commit := b.GitCommit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("%s (built %s, commit %s)",
		b.Version,
		buildTime.Format("2006-01-02 15:04:05 UTC"),
		commit)
}

// FetchServerInfo asks a running site for its build information
func FetchServerInfo(ctx context.Context, serverURL string) (*BuildInfo, error) {
	serverURL = strings.TrimRight(serverURL, "/")

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverURL+Path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to check server version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Data BuildInfo `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to parse version response: %w", err)
	}

	return &envelope.Data, nil
}

// CompareVersions compares two semantic version strings
// Returns: -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2
func CompareVersions(v1, v2 string) int {
	// Remove 'v' prefix if present
	v1 = strings.TrimPrefix(v1, "v")
	v2 = strings.TrimPrefix(v2, "v")

	if v1 == v2 {
		return 0
	}
	if v1 == "dev" || v1 == "unknown" {
		return -1 // Development versions are considered older
	}
	if v2 == "dev" || v2 == "unknown" {
		return 1
	}

	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	// Pad shorter version with zeros
	maxLen := len(parts1)
	if len(parts2) > maxLen {
		maxLen = len(parts2)
	}
	for len(parts1) < maxLen {
		parts1 = append(parts1, "0")
	}
	for len(parts2) < maxLen {
		parts2 = append(parts2, "0")
	}

	for i := 0; i < maxLen; i++ {
		num1 := parseVersionPart(parts1[i])
		num2 := parseVersionPart(parts2[i])

		if num1 < num2 {
			return -1
		}
		if num1 > num2 {
			return 1
		}
	}

	return 0
}

// parseVersionPart extracts the numeric part from a version component
func parseVersionPart(part string) int {
	i := 0
	for i < len(part) && (part[i] >= '0' && part[i] <= '9') {
		i++
	}

	if i == 0 {
		return 0
	}

	num, err := strconv.Atoi(part[:i])
	if err != nil {
		return 0
	}

	return num
}

// IsUpdateAvailable checks if the server runs a newer build than the client
func IsUpdateAvailable(clientVersion, serverVersion string) bool {
	return CompareVersions(clientVersion, serverVersion) < 0
}
