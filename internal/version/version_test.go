package version

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1       string
		v2       string
		expected int
	}{
		{"v1.0.542", "v1.0.533", 1},
		{"v1.0.533", "v1.0.542", -1},
		{"1.0.542", "1.0.542", 0},
		{"v1.0.542", "1.0.542", 0},
		{"v1.0.10", "v1.0.2", 1},
		{"v1.0.2", "v1.0.10", -1},
		{"v1.2", "v1.2.0", 0},
		{"dev", "v1.0.0", -1},
		{"v1.0.0", "dev", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CompareVersions(tt.v1, tt.v2), "CompareVersions(%s, %s)", tt.v1, tt.v2)
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	assert.True(t, IsUpdateAvailable("v1.0.533", "v1.0.542"))
	assert.False(t, IsUpdateAvailable("v1.0.542", "v1.0.533"))
	assert.False(t, IsUpdateAvailable("v1.0.542", "v1.0.542"))
}

func TestBuildInfoString(t *testing.T) {
	assert.Equal(t, "dev (development build)", BuildInfo{Version: "dev", BuildTime: "unknown"}.String())
	assert.Equal(t, "v1.2.0 (built 2026-01-02 03:04:05 UTC, commit abc)",
		BuildInfo{Version: "v1.2.0", BuildTime: "2026-01-02T03:04:05Z", GitCommit: "abc"}.String())
	assert.Equal(t, "v1.2.0 (built 2026-01-02 03:04:05 UTC, commit 01234567)",
		BuildInfo{Version: "v1.2.0", BuildTime: "2026-01-02T03:04:05Z", GitCommit: "0123456789abcdef"}.String())
}

func TestFetchServerInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, Path, r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    BuildInfo{Version: "v2.0.0", Platform: "linux/amd64"},
		})
	}))
	defer srv.Close()

	info, err := FetchServerInfo(context.Background(), srv.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", info.Version)
	assert.Equal(t, "linux/amd64", info.Platform)
}
