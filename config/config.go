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

	"github.com/logiflow/teambalance/core/condition"
	"github.com/logiflow/teambalance/core/metrics"
	"github.com/logiflow/teambalance/core/partition"
)

type Config struct {
	Roster    RosterConfig     `json:"roster"`
	Condition condition.Config `json:"condition"`
	Solver    partition.Config `json:"solver"`
	Metrics   metrics.Config   `json:"metrics"`
	Export    ExportConfig     `json:"export"`
	Logging   LoggingConfig    `json:"logging"`
}

// Load reads the configuration file at path (yaml or json by extension)
// and applies TB_* environment overrides, e.g. TB_SOLVER__NODE_BUDGET.
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
	// Optional environment overrides
	if err := k.Load(env.Provider("TB_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tb_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields on every section.
func (c *Config) ApplyDefaults() {
	c.Roster.SetDefaults()
	c.Condition.SetDefaults()
	c.Solver.SetDefaults()
	c.Export.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Roster.Validate(); err != nil {
		return err
	}
	if err := c.Export.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
