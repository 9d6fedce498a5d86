package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.ClassifierHost, cfg.ReasonerHost)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://localhost:9100"),
		WithClassifierModel("qwen2.5:3b"),
		WithReasonerModel("gpt-4o-mini"),
		WithRequestTimeout(5*time.Second),
	)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:9100/v1", cfg.ClassifierHost)
	assert.Equal(t, "http://localhost:9100/v1", cfg.ReasonerHost)
	assert.Equal(t, "gpt-4o-mini", cfg.ReasonerModel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{name: "adds v1 suffix", host: "http://localhost:11434", want: "http://localhost:11434/v1"},
		{name: "trailing slash", host: "http://localhost:11434/", want: "http://localhost:11434/v1"},
		{name: "already normalized", host: "http://localhost:11434/v1", want: "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.ClassifierHost)
			assert.Equal(t, tt.want, cfg.ReasonerHost)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing classifier host", mutate: func(c *Config) { c.ClassifierHost = "" }},
		{name: "missing reasoner host", mutate: func(c *Config) { c.ReasonerHost = "" }},
		{name: "missing classifier model", mutate: func(c *Config) { c.ClassifierModel = "" }},
		{name: "missing reasoner model", mutate: func(c *Config) { c.ReasonerModel = "" }},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
