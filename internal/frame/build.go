// internal/frame/build.go
package frame

import "encoding/binary"

// Request geometry is fixed for all six supported functions: 6 ADU bytes
// plus CRC on the wire. Response lengths (incl. CRC) per function:
//
//	read coils / discrete inputs   6  (addr fc count data crc crc)
//	read holding / input registers 7  (addr fc count hi lo crc crc)
//	write coil / register          8  (request echo)
const (
	txLength = 8

	rxLengthBits  = 6
	rxLengthWords = 7
	rxLengthEcho  = 8
)

func build(function uint8, device uint8, register, value uint16, rxLength int) *Frame {
	adu := make([]byte, 6)
	adu[0] = device
	adu[1] = function
	binary.BigEndian.PutUint16(adu[2:4], register)
	binary.BigEndian.PutUint16(adu[4:6], value)

	return &Frame{
		ADU:      adu,
		TxLength: txLength,
		RxLength: rxLength,
		CRCCheck: true,
		Context:  TagCommand,
	}
}

// ReadCoils builds an FC 1 request for count coils at register.
func ReadCoils(device uint8, register, count uint16) *Frame {
	return build(FuncReadCoils, device, register, count, rxLengthBits)
}

// ReadDiscreteInputs builds an FC 2 request for count inputs at register.
func ReadDiscreteInputs(device uint8, register, count uint16) *Frame {
	return build(FuncReadDiscreteInputs, device, register, count, rxLengthBits)
}

// ReadHoldingRegisters builds an FC 3 request. The count is hard-wired to
// one register regardless of the command value.
func ReadHoldingRegisters(device uint8, register uint16) *Frame {
	return build(FuncReadHoldingRegisters, device, register, 1, rxLengthWords)
}

// ReadInputRegisters builds an FC 4 request for count registers at register.
func ReadInputRegisters(device uint8, register, count uint16) *Frame {
	return build(FuncReadInputRegisters, device, register, count, rxLengthWords)
}

// WriteCoil builds an FC 5 request. The value must already be one of the
// CoilOn/CoilOff sentinels (see CoilValue).
func WriteCoil(device uint8, register, value uint16) *Frame {
	return build(FuncWriteCoil, device, register, value, rxLengthEcho)
}

// WriteRegister builds an FC 6 request writing value to register.
func WriteRegister(device uint8, register, value uint16) *Frame {
	return build(FuncWriteRegister, device, register, value, rxLengthEcho)
}
