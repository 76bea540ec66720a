// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	t := &cfg.MBIO.Transport

	if t.TimeoutMs == 0 {
		t.TimeoutMs = 1000
	}

	if t.Mode == "rtu" {
		if t.BaudRate == 0 {
			t.BaudRate = 19200
		}
		if t.DataBits == 0 {
			t.DataBits = 8
		}
		if t.Parity == "" {
			t.Parity = "N"
		}
		if t.StopBits == 0 {
			t.StopBits = 1
		}
	}

	if cfg.MBIO.Engine.WaitStepMs == 0 {
		cfg.MBIO.Engine.WaitStepMs = 50
	}
}
