// internal/frame/frame.go
package frame

import "encoding/binary"

// Modbus function codes supported by the engine.
const (
	FuncReadCoils            uint8 = 0x01
	FuncReadDiscreteInputs   uint8 = 0x02
	FuncReadHoldingRegisters uint8 = 0x03
	FuncReadInputRegisters   uint8 = 0x04
	FuncWriteCoil            uint8 = 0x05
	FuncWriteRegister        uint8 = 0x06
)

// Single-coil write sentinels (Modbus FC 5).
const (
	CoilOn  uint16 = 0xFF00
	CoilOff uint16 = 0x0000
)

// exceptionBit is set on the function-code byte of an error response.
const exceptionBit = 0x80

// Tag identifies which logical command produced a frame, so completion
// callbacks can tell this engine's transactions apart from other users of
// the same transport.
type Tag uint8

const (
	TagIdle    Tag = 0
	TagCommand Tag = 1
)

// Frame is one Modbus application data unit plus its transaction geometry.
// A frame is built fresh per transaction and does not outlive it.
type Frame struct {
	// ADU holds the request bytes on send and is replaced by the response
	// bytes on completion. CRC is appended and stripped by the transport.
	ADU []byte

	// TxLength and RxLength are the on-wire lengths including CRC.
	TxLength int
	RxLength int

	// CRCCheck asks the transport to verify the response CRC.
	CRCCheck bool

	// Context is the opaque tag identifying the issuing command.
	Context any
}

// Device returns the slave device address.
func (f *Frame) Device() uint8 { return f.ADU[0] }

// Function returns the function code with the exception bit masked off.
func (f *Frame) Function() uint8 { return f.ADU[1] &^ exceptionBit }

// Exception reports whether the response carries the error indicator.
func (f *Frame) Exception() bool { return f.ADU[1]&exceptionBit != 0 }

// Register returns the big-endian register field of a request frame.
func (f *Frame) Register() uint16 { return binary.BigEndian.Uint16(f.ADU[2:4]) }

// Value returns the big-endian value/count field of a request frame.
func (f *Frame) Value() uint16 { return binary.BigEndian.Uint16(f.ADU[4:6]) }

// CoilValue maps a command value to the FC 5 wire sentinel: any nonzero
// value switches the coil on, zero switches it off.
func CoilValue(v uint16) uint16 {
	if v > 0 {
		return CoilOn
	}
	return CoilOff
}

// U16 decodes a big-endian 16-bit value from b.
func U16(b []byte) uint16 { return binary.BigEndian.Uint16(b[:2]) }
