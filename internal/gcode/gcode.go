// internal/gcode/gcode.go
package gcode

import "math"

// MCode identifies a user M-code.
type MCode int

const (
	// MCodeTransaction is the one-shot Modbus transaction command:
	// M101 D{0..247} E{1..6} P{1..9999} [Q{0..65535}]
	MCodeTransaction MCode = 101

	// MCodeWaitInput is the blocking wait on a discrete input:
	// M102 D{0..247} P{1..9999} Q{0,1} R{>=0}
	MCodeWaitInput MCode = 102
)

// Error is a constant command status error.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

const (
	// ErrBadNumberFormat reports a required word that is missing or not
	// integer-valued.
	ErrBadNumberFormat Error = "gcode: bad number format"

	// ErrValueOutOfRange reports a well-formed word outside its valid range.
	ErrValueOutOfRange Error = "gcode: value out of range"

	// ErrUnhandled reports an M-code no handler claimed.
	ErrUnhandled Error = "gcode: unhandled mcode"
)

// Word is one parameter word: either absent or present with a numeric value.
type Word struct {
	Set   bool
	Value float64
}

// Int reports whether the word carries an integer value.
func (w Word) Int() bool {
	return w.Set && !math.IsNaN(w.Value) && w.Value == math.Trunc(w.Value)
}

// Claim marks the word consumed so generic handling does not reprocess it.
func (w *Word) Claim() { w.Set = false }

// Block is one parsed command: an M-code plus its parameter words.
type Block struct {
	MCode MCode

	D Word // device address
	E Word // function code
	P Word // register address
	Q Word // value / count / target
	R Word // timeout seconds
}

// ClaimAll claims every word of the block.
func (b *Block) ClaimAll() {
	b.D.Claim()
	b.E.Claim()
	b.P.Claim()
	b.Q.Claim()
	b.R.Claim()
}
