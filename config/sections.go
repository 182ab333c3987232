package config

import (
	"fmt"
	"time"
)

// RosterConfig defines ingestion settings.
type RosterConfig struct {
	// ReferenceDate anchors age computation (YYYY-MM-DD). Empty means
	// the current date, which makes ages drift between runs; set it for
	// reproducible season snapshots.
	ReferenceDate string `json:"reference_date"`
}

// SetDefaults applies sane defaults.
func (c *RosterConfig) SetDefaults() {}

// Validate checks the reference date format when set.
func (c RosterConfig) Validate() error {
	if c.ReferenceDate == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", c.ReferenceDate); err != nil {
		return fmt.Errorf("roster reference_date: %w", err)
	}
	return nil
}

// Now resolves the reference date, defaulting to the wall clock.
func (c RosterConfig) Now() time.Time {
	if c.ReferenceDate == "" {
		return time.Now()
	}
	t, _ := time.Parse("2006-01-02", c.ReferenceDate)
	return t
}

// ExportConfig defines output settings.
type ExportConfig struct {
	// Format selects the writer: "csv" or "json".
	Format string `json:"format"`
	// IncludePlaceholders keeps injected placeholder players in the
	// exported roster. They are always flagged either way.
	IncludePlaceholders bool `json:"include_placeholders"`
}

// SetDefaults applies sane defaults.
func (c *ExportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "csv"
	}
}

// Validate checks mandatory fields.
func (c ExportConfig) Validate() error {
	if c.Format != "csv" && c.Format != "json" {
		return fmt.Errorf("unknown export format %s", c.Format)
	}
	return nil
}

// LoggingConfig defines log output settings.
type LoggingConfig struct {
	// Level is the minimum severity: debug, info, warn or error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}
