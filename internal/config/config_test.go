package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
data:
  tariff_file: tariffs.csv
  markets_file: markets.csv
`)
	// Make the relative paths resolvable next to the config file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tariffs.csv"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "markets.csv"), nil, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "tariffs.csv"), c.Data.TariffFile)
	assert.Equal(t, 12.0, c.Defaults.AnnualExportValue)
	assert.Equal(t, 0.6, c.Defaults.PassthroughRatio)
	assert.Equal(t, 0.7, c.Defaults.NegotiationFactor)
}

func TestLoad_ExplicitDefaultsKept(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
data:
  tariff_file: tariffs.csv
  markets_file: markets.csv
defaults:
  annual_export_value: 5.5
  passthrough_ratio: 0.25
  negotiation_factor: 0.9
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5.5, c.Defaults.AnnualExportValue)
	assert.Equal(t, 0.25, c.Defaults.PassthroughRatio)
	assert.Equal(t, 0.9, c.Defaults.NegotiationFactor)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing tariff file",
			body:    "data:\n  markets_file: markets.csv\n",
			wantErr: "tariff_file",
		},
		{
			name:    "missing markets file",
			body:    "data:\n  tariff_file: tariffs.csv\n",
			wantErr: "markets_file",
		},
		{
			name: "passthrough out of range",
			body: "data:\n  tariff_file: t.csv\n  markets_file: m.csv\n" +
				"defaults:\n  passthrough_ratio: 1.5\n",
			wantErr: "passthrough_ratio",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.body)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "data/tariff_scenarios.csv", c.Data.TariffFile)
}
