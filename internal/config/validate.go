// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	t := cfg.MBIO.Transport

	switch t.Mode {
	case "tcp":
		if t.Endpoint == "" {
			return fmt.Errorf("transport: mode tcp requires endpoint")
		}

	case "rtu":
		if t.Device == "" {
			return fmt.Errorf("transport: mode rtu requires device")
		}
		switch t.Parity {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("transport: parity %q must be one of N, E, O", t.Parity)
		}
		if t.BaudRate < 0 {
			return fmt.Errorf("transport: baud_rate must be >= 0")
		}
		if t.DataBits != 0 && t.DataBits != 7 && t.DataBits != 8 {
			return fmt.Errorf("transport: data_bits must be 7 or 8")
		}
		if t.StopBits != 0 && t.StopBits != 1 && t.StopBits != 2 {
			return fmt.Errorf("transport: stop_bits must be 1 or 2")
		}

	default:
		return fmt.Errorf("transport: mode %q must be tcp or rtu", t.Mode)
	}

	if t.TimeoutMs < 0 {
		return fmt.Errorf("transport: timeout_ms must be >= 0")
	}

	if cfg.MBIO.Engine.WaitStepMs < 0 {
		return fmt.Errorf("engine: wait_step_ms must be >= 0")
	}

	return nil
}
