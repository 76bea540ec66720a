// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	MBIO MBIOConfig `yaml:"mbio"`
}

type MBIOConfig struct {
	Transport TransportConfig `yaml:"transport"`
	Engine    EngineConfig    `yaml:"engine"`
}

// ---- TRANSPORT ----

type TransportConfig struct {
	Mode     string `yaml:"mode"`     // tcp | rtu
	Endpoint string `yaml:"endpoint"` // tcp
	Device   string `yaml:"device"`   // rtu

	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // N | E | O
	StopBits int    `yaml:"stop_bits"`

	TimeoutMs int `yaml:"timeout_ms"`
}

// ---- ENGINE ----

type EngineConfig struct {
	WaitStepMs int  `yaml:"wait_step_ms"`
	Trace      bool `yaml:"trace"`
}

// Load reads and decodes a config file. Call Validate and Normalize before
// using the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
