package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Logging LoggingConfig `json:"logging"`
	Metrics MetricsConfig `json:"metrics"`
	Export  ExportConfig  `json:"export"`
	Support SupportConfig `json:"support"`
	Trading TradingConfig `json:"trading"`
}

// LoggingConfig controls the process-wide log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", c.Level)
}

// MetricsConfig enables the Prometheus sink.
type MetricsConfig struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
}

// ExportConfig selects the exporter quality tier.
type ExportConfig struct {
	Quality string `json:"quality"`
	Folder  string `json:"folder"`
}

func (c *ExportConfig) SetDefaults() {
	if c.Quality == "" {
		c.Quality = "high"
	}
	if c.Folder == "" {
		c.Folder = "/tmp/export"
	}
}

// SupportConfig selects the ticket ordering strategy.
type SupportConfig struct {
	Ordering PluginConfig `json:"ordering"`
}

func (c *SupportConfig) SetDefaults() {
	if c.Ordering.Type == "" {
		c.Ordering.Type = "fifo"
	}
}

// TradingConfig selects the trading decision strategy and the traded symbol.
type TradingConfig struct {
	Strategy PluginConfig `json:"strategy"`
	Symbol   string       `json:"symbol"`
}

func (c *TradingConfig) SetDefaults() {
	if c.Strategy.Type == "" {
		c.Strategy.Type = "average"
	}
	if c.Symbol == "" {
		c.Symbol = "BTC/USD"
	}
}

// Load reads the configuration file at path, applying PK_ environment
// overrides (double underscore separates nesting levels), then defaults and
// validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("PK_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pk_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Export.SetDefaults()
	cfg.Support.SetDefaults()
	cfg.Trading.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
