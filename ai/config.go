// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
type Config struct {
	// ClassifierHost is the base URL for the intent/tagging service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	ClassifierHost string

	// ReasonerHost is the base URL for the ranking/justification service API.
	ReasonerHost string

	// ClassifierModel is the model identifier for intent extraction and tagging.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	ClassifierModel string

	// ReasonerModel is the model identifier for candidate ranking.
	ReasonerModel string

	// RequestTimeout bounds each service call. A timed-out call surfaces
	// as an error so the owning component can take its fallback path.
	// Default: 20s
	RequestTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithClassifierHost sets the classifier service host URL.
func WithClassifierHost(host string) ConfigOption {
	return func(c *Config) {
		c.ClassifierHost = host
	}
}

// WithReasonerHost sets the reasoner service host URL.
func WithReasonerHost(host string) ConfigOption {
	return func(c *Config) {
		c.ReasonerHost = host
	}
}

// WithHost sets both classifier and reasoner hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.ClassifierHost = host
		c.ReasonerHost = host
	}
}

// WithClassifierModel sets the classifier model identifier.
func WithClassifierModel(model string) ConfigOption {
	return func(c *Config) {
		c.ClassifierModel = model
	}
}

// WithReasonerModel sets the reasoner model identifier.
func WithReasonerModel(model string) ConfigOption {
	return func(c *Config) {
		c.ReasonerModel = model
	}
}

// WithRequestTimeout sets the per-call timeout for both services.
func WithRequestTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.RequestTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. By default, both services use the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		ClassifierHost:  defaultHost,
		ReasonerHost:    defaultHost,
		ClassifierModel: "qwen2.5:3b",
		ReasonerModel:   "qwen2.5:3b",
		RequestTimeout:  20 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithReasonerModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.ClassifierHost != "" && !strings.HasSuffix(c.ClassifierHost, "/v1") {
		c.ClassifierHost = strings.TrimSuffix(c.ClassifierHost, "/") + "/v1"
	}
	if c.ReasonerHost != "" && !strings.HasSuffix(c.ReasonerHost, "/v1") {
		c.ReasonerHost = strings.TrimSuffix(c.ReasonerHost, "/") + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.ClassifierHost == "" {
		return errors.New("ai config: ClassifierHost is required")
	}
	if c.ReasonerHost == "" {
		return errors.New("ai config: ReasonerHost is required")
	}
	if c.ClassifierModel == "" {
		return errors.New("ai config: ClassifierModel is required")
	}
	if c.ReasonerModel == "" {
		return errors.New("ai config: ReasonerModel is required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("ai config: RequestTimeout must be positive")
	}
	return nil
}
