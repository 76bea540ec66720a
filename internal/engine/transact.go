// internal/engine/transact.go
package engine

import (
	"fmt"

	"github.com/cncio/mbio/internal/frame"
	"github.com/cncio/mbio/internal/host"
	"github.com/cncio/mbio/internal/transport"
)

// outcome is the typed result of one completed transaction. The completion
// callback fills it in before the blocking send returns, so callers consume
// the outcome directly instead of racing on shared state.
type outcome struct {
	value    int32
	hasValue bool

	failed  bool
	excCode uint8
}

// transact dispatches one frame as a blocking transaction and decodes the
// response. The engine allows a single outstanding transaction at a time.
func (e *Engine) transact(f *frame.Frame) outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out outcome

	cb := transport.Callbacks{
		OnPacket: func(msg *frame.Frame) {
			if tag, ok := msg.Context.(frame.Tag); !ok || tag != frame.TagCommand {
				return
			}
			if e.trace != nil {
				e.trace("rx", msg.ADU)
			}
			if msg.Exception() {
				out.failed = true
				out.excCode = msg.ADU[2]
				return
			}
			if v, ok := decode(msg); ok {
				out.value = v
				out.hasValue = true
			}
		},
		OnException: func(code uint8, context any) {
			out.failed = true
			out.excCode = code
		},
	}

	if e.trace != nil {
		e.trace("tx", f.ADU)
	}

	e.tr.Send(f, cb, true)

	if out.failed {
		e.rep.Alarm(host.AlarmProtocolError)
		e.rep.Warn(fmt.Sprintf("modbus i/o: transaction failed (code %d)", out.excCode))
		return out
	}

	if out.hasValue {
		e.result.store(out.value)
	}
	return out
}

// decode extracts the value of a successful read response. Write echoes
// carry nothing to decode.
func decode(msg *frame.Frame) (int32, bool) {
	switch msg.Function() {
	case frame.FuncReadDiscreteInputs:
		return int32(msg.ADU[3] & 0x01), true

	case frame.FuncReadCoils:
		return int32(msg.ADU[3]), true

	case frame.FuncReadHoldingRegisters, frame.FuncReadInputRegisters:
		return int32(frame.U16(msg.ADU[3:])), true
	}
	return 0, false
}
