// internal/host/notifier.go
package host

import "sync"

// Notifier is a phase-aware Reporter. During cold start the realtime alarm
// channel is not yet safe to use, so alarms raised before Ready() are queued
// and flushed once normal operation begins. Warnings are suppressed on the
// cold path: the queued alarm is the only record of the failure.
type Notifier struct {
	// RaiseFn delivers an alarm to the controller. Required.
	RaiseFn func(code uint16)

	// WarnFn emits a diagnostic line. Optional.
	WarnFn func(msg string)

	mu     sync.Mutex
	ready  bool
	queued []uint16
}

// NewNotifier returns a Notifier still in its cold-start phase.
func NewNotifier(raise func(code uint16), warn func(msg string)) *Notifier {
	return &Notifier{RaiseFn: raise, WarnFn: warn}
}

// Ready ends the cold-start phase and flushes queued alarms in order.
func (n *Notifier) Ready() {
	n.mu.Lock()
	queued := n.queued
	n.queued = nil
	n.ready = true
	n.mu.Unlock()

	for _, code := range queued {
		n.RaiseFn(code)
	}
}

// Alarm implements Reporter.
func (n *Notifier) Alarm(code uint16) {
	n.mu.Lock()
	if !n.ready {
		n.queued = append(n.queued, code)
		n.mu.Unlock()
		return
	}
	n.mu.Unlock()

	n.RaiseFn(code)
}

// Warn implements Reporter. Warnings issued during cold start are dropped.
func (n *Notifier) Warn(msg string) {
	n.mu.Lock()
	ready := n.ready
	n.mu.Unlock()

	if ready && n.WarnFn != nil {
		n.WarnFn(msg)
	}
}
