// Package llm provides the generative-model client abstraction used by content selection.
package llm

import "time"

// Config holds the model configuration for the application.
type Config struct {
	Model          string
	Temperature    float32
	RequestTimeout time.Duration
}

// DefaultConfig returns the default model configuration. Low temperature keeps
// structured output as consistent as the model allows.
func DefaultConfig() *Config {
	return &Config{
		Model:          "gemini-2.5-flash",
		Temperature:    0.1,
		RequestTimeout: 60 * time.Second,
	}
}

// WithModel returns a copy of the config using a specific model name.
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}
