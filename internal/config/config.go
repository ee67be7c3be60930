// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is loaded from an optional JSON file, then overridden by environment
// variables. All fields are optional; missing values use defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// Model
	APIKey      string  `json:"api_key,omitempty"`
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty" validate:"omitempty,min=0,max=2"`

	// Generation
	MaxConcurrent      int64  `json:"max_concurrent,omitempty" validate:"omitempty,min=1"`
	RunTimeoutSecs     int    `json:"run_timeout_secs,omitempty" validate:"omitempty,min=1"`
	MaxPromptChars     int    `json:"max_prompt_chars,omitempty" validate:"omitempty,min=1000"`
	MaxPerExperience   int    `json:"max_per_experience,omitempty" validate:"omitempty,min=1,max=10"`
	SelectionRetries   int    `json:"selection_retries,omitempty" validate:"omitempty,min=0,max=5"`
	PdflatexPath       string `json:"pdflatex_path,omitempty"`
	CompileTimeoutSecs int    `json:"compile_timeout_secs,omitempty" validate:"omitempty,min=1"`

	// Storage; empty means in-memory stores
	DatabaseURL string `json:"database_url,omitempty"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Port:               8080,
		Model:              "gemini-2.5-flash",
		Temperature:        0.1,
		MaxConcurrent:      1,
		RunTimeoutSecs:     300,
		MaxPromptChars:     16000,
		MaxPerExperience:   4,
		SelectionRetries:   2,
		CompileTimeoutSecs: 60,
	}
}

// Load reads the config file (when path is non-empty), applies environment
// overrides, fills defaults, and validates.
func Load(path string) (*Config, error) {
	cfg := Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Port == 0 {
		c.Port = d.Port
	}
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.Temperature == 0 {
		c.Temperature = d.Temperature
	}
	if c.MaxConcurrent == 0 {
		c.MaxConcurrent = d.MaxConcurrent
	}
	if c.RunTimeoutSecs == 0 {
		c.RunTimeoutSecs = d.RunTimeoutSecs
	}
	if c.MaxPromptChars == 0 {
		c.MaxPromptChars = d.MaxPromptChars
	}
	if c.MaxPerExperience == 0 {
		c.MaxPerExperience = d.MaxPerExperience
	}
	if c.SelectionRetries == 0 {
		c.SelectionRetries = d.SelectionRetries
	}
	if c.CompileTimeoutSecs == 0 {
		c.CompileTimeoutSecs = d.CompileTimeoutSecs
	}
}

// Validate checks ranges via struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// RunTimeout is RunTimeoutSecs as a duration.
func (c *Config) RunTimeout() time.Duration {
	return time.Duration(c.RunTimeoutSecs) * time.Second
}

// CompileTimeout is CompileTimeoutSecs as a duration.
func (c *Config) CompileTimeout() time.Duration {
	return time.Duration(c.CompileTimeoutSecs) * time.Second
}
