package config_test

import (
	"election/internal/config"
	"election/pkg/serrors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, config.FormatText, cfg.Output.Format)
	require.Equal(t, config.ColorAuto, cfg.Output.Color)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "environment: production\noutput:\n  format: json\n  color: never\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, config.FormatJSON, cfg.Output.Format)
	require.Equal(t, config.ColorNever, cfg.Output.Color)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output:\n  format: text\n")
	t.Setenv("OUTPUT_FORMAT", "json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.FormatJSON, cfg.Output.Format)
}

func TestLoadColorFromEnv(t *testing.T) {
	path := writeConfig(t, "output:\n  color: never\n")
	t.Setenv("OUTPUT_COLOR", "always")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.ColorAlways, cfg.Output.Color)
}

func TestLoadIgnoresNoColor(t *testing.T) {
	for _, value := range []string{"yes", "1", ""} {
		t.Run("NO_COLOR="+value, func(t *testing.T) {
			t.Setenv("NO_COLOR", value)

			cfg, err := config.Load("")
			require.NoError(t, err)
			require.Equal(t, config.ColorAuto, cfg.Output.Color)
		})
	}
}

func TestLoadRejectsUnknownColor(t *testing.T) {
	path := writeConfig(t, "output:\n  color: sometimes\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "output:\n  format: xml\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
