// internal/engine/validate.go
package engine

import (
	"github.com/cncio/mbio/internal/frame"
	"github.com/cncio/mbio/internal/gcode"
)

// Parameter ranges shared by both commands.
const (
	maxDeviceAddress = 247

	minRegisterAddress = 1
	maxRegisterAddress = 9999

	maxValue = 65535
)

// Validate implements Handler.
//
// Error precedence is deterministic: every structural check (missing word,
// non-integer value) is evaluated before any range check, and range checks
// report the first violation in declaration order.
func (e *Engine) Validate(b *gcode.Block) error {
	switch b.MCode {
	case gcode.MCodeTransaction:
		return validateTransaction(b)
	case gcode.MCodeWaitInput:
		return validateWait(b)
	default:
		if e.next != nil {
			return e.next.Validate(b)
		}
		return gcode.ErrUnhandled
	}
}

// validateTransaction checks M101 D{0..247} E{1..6} P{1..9999} [Q{0..65535}].
func validateTransaction(b *gcode.Block) error {
	if !b.D.Int() || !b.E.Int() || !b.P.Int() {
		return gcode.ErrBadNumberFormat
	}
	if b.Q.Set && !b.Q.Int() {
		return gcode.ErrBadNumberFormat
	}

	// Structural checks passed: the words are ours now, even if a range
	// check fails below.
	supplied := b.Q.Set
	b.ClaimAll()

	if b.D.Value < 0 || b.D.Value > maxDeviceAddress {
		return gcode.ErrValueOutOfRange
	}
	if b.E.Value < 0 || b.E.Value > 255 || !supportedFunction(uint8(b.E.Value)) {
		return gcode.ErrValueOutOfRange
	}
	if b.P.Value < minRegisterAddress || b.P.Value > maxRegisterAddress {
		return gcode.ErrValueOutOfRange
	}
	if supplied && (b.Q.Value < 0 || b.Q.Value > maxValue) {
		return gcode.ErrValueOutOfRange
	}

	switch uint8(b.E.Value) {
	case frame.FuncReadDiscreteInputs, frame.FuncReadInputRegisters:
		// Count is fixed to one register/input for these reads.
		b.Q.Value = 1
	case frame.FuncReadCoils:
		if !supplied {
			b.Q.Value = 1
		}
	}

	return nil
}

// validateWait checks M102 D{0..247} P{1..9999} Q{0,1} R{>=0}.
func validateWait(b *gcode.Block) error {
	if !b.D.Int() || !b.P.Int() || !b.Q.Int() {
		return gcode.ErrBadNumberFormat
	}
	if !b.R.Set || b.R.Value != b.R.Value { // NaN
		return gcode.ErrBadNumberFormat
	}

	b.ClaimAll()

	if b.D.Value < 0 || b.D.Value > maxDeviceAddress {
		return gcode.ErrValueOutOfRange
	}
	if b.P.Value < minRegisterAddress || b.P.Value > maxRegisterAddress {
		return gcode.ErrValueOutOfRange
	}
	if b.Q.Value != 0 && b.Q.Value != 1 {
		return gcode.ErrValueOutOfRange
	}
	if b.R.Value < 0 {
		return gcode.ErrValueOutOfRange
	}

	return nil
}

func supportedFunction(fc uint8) bool {
	switch fc {
	case frame.FuncReadCoils,
		frame.FuncReadDiscreteInputs,
		frame.FuncReadHoldingRegisters,
		frame.FuncReadInputRegisters,
		frame.FuncWriteCoil,
		frame.FuncWriteRegister:
		return true
	}
	return false
}
