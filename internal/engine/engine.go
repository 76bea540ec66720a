// internal/engine/engine.go
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cncio/mbio/internal/gcode"
	"github.com/cncio/mbio/internal/host"
	"github.com/cncio/mbio/internal/transport"
)

// Handler is the three-method command surface the controller expects from
// an M-code extension. The engine both implements it and forwards to the
// previously installed handler, so extensions stack.
type Handler interface {
	// Check reports whether the M-code is handled.
	Check(code gcode.MCode) bool

	// Validate checks and normalizes the block's parameter words, claiming
	// the ones it consumes.
	Validate(b *gcode.Block) error

	// Execute runs a validated block. Failures after dispatch surface via
	// the host alarm port, not the return path.
	Execute(ctx context.Context, b *gcode.Block)
}

// DefaultWaitStep is the fixed step duration of the wait loop.
const DefaultWaitStep = 50 * time.Millisecond

// Config carries the engine's collaborators.
type Config struct {
	Transport transport.Interface
	Reporter  host.Reporter

	// Next is the handler installed before this engine, called as a
	// fallback for M-codes the engine does not own. Optional.
	Next Handler

	// WaitStep overrides DefaultWaitStep. Optional.
	WaitStep time.Duration

	// Trace receives hex-dump-worthy ADUs ("tx"/"rx") when set. Optional.
	Trace func(dir string, adu []byte)
}

// Engine is the Modbus I/O command transaction engine.
type Engine struct {
	tr       transport.Interface
	rep      host.Reporter
	next     Handler
	waitStep time.Duration
	trace    func(dir string, adu []byte)

	// mu serializes transactions: only one engine-owned frame may be
	// outstanding at a time.
	mu sync.Mutex

	result resultRegister
}

// New creates an engine with immutable config.
func New(cfg Config) (*Engine, error) {
	if cfg.Transport == nil {
		return nil, errors.New("engine: transport required")
	}
	if cfg.Reporter == nil {
		return nil, errors.New("engine: reporter required")
	}
	if cfg.WaitStep == 0 {
		cfg.WaitStep = DefaultWaitStep
	}
	if cfg.WaitStep < 0 {
		return nil, errors.New("engine: wait step must be > 0")
	}

	return &Engine{
		tr:       cfg.Transport,
		rep:      cfg.Reporter,
		next:     cfg.Next,
		waitStep: cfg.WaitStep,
		trace:    cfg.Trace,
	}, nil
}

// Check implements Handler.
func (e *Engine) Check(code gcode.MCode) bool {
	if code == gcode.MCodeTransaction || code == gcode.MCodeWaitInput {
		return true
	}
	if e.next != nil {
		return e.next.Check(code)
	}
	return false
}

// Result returns the last value decoded from a completed read transaction.
// It may be stale relative to a transaction still in flight; pair each
// transaction with an explicit wait rather than assuming freshness.
func (e *Engine) Result() int32 {
	return e.result.load()
}

// resultRegister is the shared slot holding the most recent decoded value.
type resultRegister struct {
	mu sync.Mutex
	v  int32
}

func (r *resultRegister) store(v int32) {
	r.mu.Lock()
	r.v = v
	r.mu.Unlock()
}

func (r *resultRegister) load() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.v
}
