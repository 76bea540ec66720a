// internal/engine/wait.go
package engine

import (
	"context"
	"math"
	"time"

	"github.com/cncio/mbio/internal/frame"
)

// NoMatch is returned by WaitDiscreteInput when the loop ends without
// observing the target value. Legitimate discrete-input values are 0 or 1.
const NoMatch int32 = -1

// WaitResult tells why the wait loop terminated.
type WaitResult uint8

const (
	WaitMatched WaitResult = iota
	WaitTimedOut
	WaitAborted
)

// WaitDiscreteInput repeatedly reads one discrete input until it equals
// target or the timeout elapses. The timeout is approximated by counted
// fixed-duration steps, so cancellation latency is bounded by the step
// duration. ctx cancellation aborts the loop at the next step boundary.
func (e *Engine) WaitDiscreteInput(ctx context.Context, device uint8, register uint16, target int32, timeout time.Duration) (int32, WaitResult) {
	steps := int(math.Ceil(float64(timeout)/float64(e.waitStep))) + 1

	for {
		if ctx.Err() != nil {
			return NoMatch, WaitAborted
		}

		out := e.transact(frame.ReadDiscreteInputs(device, register, 1))
		if out.hasValue && out.value == target {
			return out.value, WaitMatched
		}

		if steps == 0 {
			return NoMatch, WaitTimedOut
		}
		steps--

		select {
		case <-ctx.Done():
			return NoMatch, WaitAborted
		case <-time.After(e.waitStep):
		}
	}
}
