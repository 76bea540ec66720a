// internal/transport/transport.go
package transport

import "github.com/cncio/mbio/internal/frame"

// Callbacks are invoked by the transport exactly once per transaction.
type Callbacks struct {
	// OnPacket receives the frame with its ADU replaced by the response.
	OnPacket func(msg *frame.Frame)

	// OnException receives the Modbus exception (or transport error) code
	// together with the context tag of the failed frame.
	OnException func(code uint8, context any)
}

// Interface is the transport boundary the engine depends on. Framing, CRC
// and retransmission live behind it.
//
// With block set, Send does not return until one of the callbacks has run;
// the engine relies on that ordering instead of shared state.
type Interface interface {
	Send(msg *frame.Frame, cb Callbacks, block bool)
}

// ErrTransport is the exception code used when the failure is local (wire
// or connection error) rather than a device-reported Modbus exception.
// Real exception codes occupy 0x01..0x0B.
const ErrTransport uint8 = 0xFF
