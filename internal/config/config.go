package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DataConfig points at the flat files the analysis session loads once.
type DataConfig struct {
	TariffFile  string `yaml:"tariff_file"`
	MarketsFile string `yaml:"markets_file"`
}

// DefaultsConfig seeds an analysis when the caller leaves a field unset.
// NegotiationFactor is applied to the sector's elevated rate to propose
// an initial negotiated target (the historical UI used 0.7).
type DefaultsConfig struct {
	AnnualExportValue float64 `yaml:"annual_export_value"`
	PassthroughRatio  float64 `yaml:"passthrough_ratio"`
	NegotiationFactor float64 `yaml:"negotiation_factor"`
}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a config without defaulting or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// Data paths are interpreted relative to the config file directory
	// when they are not absolute and do not resolve from the cwd.
	c.Data.TariffFile = resolvePath(path, c.Data.TariffFile)
	c.Data.MarketsFile = resolvePath(path, c.Data.MarketsFile)
	return &c, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{
		Data: DataConfig{
			TariffFile:  "data/tariff_scenarios.csv",
			MarketsFile: "data/alternative_markets.csv",
		},
	}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Defaults.AnnualExportValue == 0 {
		c.Defaults.AnnualExportValue = 12.0
	}
	if c.Defaults.PassthroughRatio == 0 {
		c.Defaults.PassthroughRatio = 0.6
	}
	if c.Defaults.NegotiationFactor == 0 {
		c.Defaults.NegotiationFactor = 0.7
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Data.TariffFile == "" {
		return errors.New("data.tariff_file is required")
	}
	if c.Data.MarketsFile == "" {
		return errors.New("data.markets_file is required")
	}
	if c.Defaults.AnnualExportValue < 0 {
		return errors.New("defaults.annual_export_value must be >= 0")
	}
	if c.Defaults.PassthroughRatio < 0 || c.Defaults.PassthroughRatio > 1 {
		return errors.New("defaults.passthrough_ratio must be in [0, 1]")
	}
	if c.Defaults.NegotiationFactor <= 0 {
		return fmt.Errorf("defaults.negotiation_factor must be > 0, got %v", c.Defaults.NegotiationFactor)
	}
	return nil
}

func resolvePath(cfgPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if _, err := os.Stat(p); err == nil {
		return p
	}
	cand := filepath.Join(filepath.Dir(cfgPath), p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}
