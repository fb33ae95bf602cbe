// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/pkordes/dragon-paving/internal/domain"
)

// Config holds all configuration values for the site server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of origins allowed to read the /api endpoints.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies (the contact form post). Defaults to 65536.
	MaxBodyBytes int64

	// SiteConfigPath is an optional TOML file overriding Brand fields.
	SiteConfigPath string

	// Brand is the company identity shown on every page.
	Brand domain.Brand
}

// siteFile is the layout of the SITE_CONFIG TOML file.
//
//	[brand]
//	name = "Dragon Paving"
//	phone_display = "337-3DRAGON"
type siteFile struct {
	Brand domain.Brand `toml:"brand"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable that holds an invalid value.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "*")),
		SiteConfigPath: os.Getenv("SITE_CONFIG"),
		Brand:          domain.DefaultBrand(),
	}

	var invalid []string

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		invalid = append(invalid, "PORT")
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		invalid = append(invalid, "LOG_LEVEL")
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "65536"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	if cfg.SiteConfigPath != "" {
		brand, err := loadBrand(cfg.SiteConfigPath, cfg.Brand)
		if err != nil {
			return Config{}, err
		}
		cfg.Brand = brand
	}

	return cfg, nil
}

// Level returns the parsed slog level, falling back to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// loadBrand decodes the TOML file at path over base. Keys absent from the
// file keep their base value.
func loadBrand(path string, base domain.Brand) (domain.Brand, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("config.loadBrand: read %s: %w", path, err)
	}

	f := siteFile{Brand: base}
	if err := toml.Unmarshal(b, &f); err != nil {
		return domain.Brand{}, fmt.Errorf("config.loadBrand: parse %s: %w", path, err)
	}

	if f.Brand.Name == "" || f.Brand.PhoneTel == "" || f.Brand.Email == "" {
		return domain.Brand{}, fmt.Errorf("config.loadBrand: %s: brand name, phone_tel and email must not be empty", path)
	}
	return f.Brand, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
