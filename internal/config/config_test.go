package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://restcountries.com/v3.1", s.APIBaseURL)
	assert.Equal(t, 5, s.MapZoom)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadEmptyPath(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_base_url: https://countries.example.com/v3.1\nmap_zoom: 8\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://countries.example.com/v3.1", s.APIBaseURL)
	assert.Equal(t, 8, s.MapZoom)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map_zoom: 8\n"), 0644))

	t.Setenv("ATLAS_MAP_ZOOM", "12")
	t.Setenv("ATLAS_API_BASE_URL", "https://mirror.example.com/v3.1")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, s.MapZoom)
	assert.Equal(t, "https://mirror.example.com/v3.1", s.APIBaseURL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map_zoom: [oops\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zoom too large", content: "map_zoom: 40\n"},
		{name: "zoom too small", content: "map_zoom: 0\n"},
		{name: "bad base url", content: "api_base_url: not-a-url\n"},
		{name: "bad log level", content: "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}
