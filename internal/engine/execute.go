// internal/engine/execute.go
package engine

import (
	"context"
	"time"

	"github.com/cncio/mbio/internal/frame"
	"github.com/cncio/mbio/internal/gcode"
	"github.com/cncio/mbio/internal/host"
)

// Execute implements Handler. The block must have passed Validate; register
// addresses are converted from the 1-based command form to the 0-based wire
// form here.
func (e *Engine) Execute(ctx context.Context, b *gcode.Block) {
	switch b.MCode {
	case gcode.MCodeTransaction:
		e.executeTransaction(b)
	case gcode.MCodeWaitInput:
		e.executeWait(ctx, b)
	default:
		if e.next != nil {
			e.next.Execute(ctx, b)
		}
		// Nobody claimed it: not our problem.
	}
}

func (e *Engine) executeTransaction(b *gcode.Block) {
	device := uint8(b.D.Value)
	register := uint16(b.P.Value) - 1
	value := uint16(b.Q.Value)

	switch uint8(b.E.Value) {
	case frame.FuncReadCoils:
		e.transact(frame.ReadCoils(device, register, value))

	case frame.FuncReadDiscreteInputs:
		e.transact(frame.ReadDiscreteInputs(device, register, 1))

	case frame.FuncReadHoldingRegisters:
		e.transact(frame.ReadHoldingRegisters(device, register))

	case frame.FuncReadInputRegisters:
		e.transact(frame.ReadInputRegisters(device, register, 1))

	case frame.FuncWriteCoil:
		e.transact(frame.WriteCoil(device, register, frame.CoilValue(value)))

	case frame.FuncWriteRegister:
		e.transact(frame.WriteRegister(device, register, value))
	}
}

func (e *Engine) executeWait(ctx context.Context, b *gcode.Block) {
	device := uint8(b.D.Value)
	register := uint16(b.P.Value) - 1
	target := int32(b.Q.Value)
	timeout := time.Duration(b.R.Value * float64(time.Second))

	v, _ := e.WaitDiscreteInput(ctx, device, register, target, timeout)
	if v == NoMatch {
		e.rep.Alarm(host.AlarmWaitTimeout)
	}
}
