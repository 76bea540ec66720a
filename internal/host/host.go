// internal/host/host.go
package host

// Alarm codes raised by the Modbus I/O engine.
// These values are protocol-locked against the controller's alarm table.

// AlarmProtocolError is raised when a device returns an error-flagged
// response or the transport reports a failed transaction.
const AlarmProtocolError uint16 = 60

// AlarmWaitTimeout is raised when a wait command exhausts its step budget
// without observing the target value.
const AlarmWaitTimeout uint16 = 61

// Reporter is the reporting boundary the engine calls into. The host owns
// the decision of when an alarm is safe to raise (see Notifier).
type Reporter interface {
	// Alarm signals a named alarm condition.
	Alarm(code uint16)

	// Warn emits a human-readable diagnostic line.
	Warn(msg string)
}
