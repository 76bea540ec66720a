// internal/engine/wait_test.go
package engine

import (
	"context"
	"testing"
	"time"

	"github.com/cncio/mbio/internal/frame"
	"github.com/cncio/mbio/internal/host"
	"github.com/cncio/mbio/internal/transport"
)

func TestWaitDiscreteInput_NeverMatchesTimesOut(t *testing.T) {
	tr := &fakeTransport{} // always responds 0
	e := newTestEngine(t, tr, &fakeReporter{}, nil)

	v, res := e.WaitDiscreteInput(context.Background(), 1, 99, 1, 5*time.Millisecond)
	if v != NoMatch {
		t.Fatalf("value=%d, want NoMatch", v)
	}
	if res != WaitTimedOut {
		t.Fatalf("result=%d, want WaitTimedOut", res)
	}

	// Reads are bounded by the step budget: ceil(timeout/step)+1 steps,
	// plus the initial read.
	maxReads := 5 + 1 + 1
	if len(tr.sent) == 0 || len(tr.sent) > maxReads {
		t.Fatalf("reads=%d, want 1..%d", len(tr.sent), maxReads)
	}

	for _, f := range tr.sent {
		if f.Function() != frame.FuncReadDiscreteInputs {
			t.Fatalf("fc=%d", f.Function())
		}
		if f.Value() != 1 {
			t.Fatalf("count=%d, want 1", f.Value())
		}
		if f.Register() != 99 {
			t.Fatalf("register=%d", f.Register())
		}
	}
}

func TestWaitDiscreteInput_MatchesImmediately(t *testing.T) {
	tr := &fakeTransport{
		respond: func(msg *frame.Frame, cb transport.Callbacks) {
			respondValue(msg, cb, 1)
		},
	}
	e := newTestEngine(t, tr, &fakeReporter{}, nil)

	start := time.Now()
	v, res := e.WaitDiscreteInput(context.Background(), 1, 99, 1, time.Hour)
	if v != 1 || res != WaitMatched {
		t.Fatalf("value=%d result=%d", v, res)
	}
	if len(tr.sent) != 1 {
		t.Fatalf("reads=%d, want 1", len(tr.sent))
	}
	if time.Since(start) > time.Second {
		t.Fatal("matched wait slept anyway")
	}
}

func TestWaitDiscreteInput_MatchesZeroTarget(t *testing.T) {
	tr := &fakeTransport{} // responds 0
	e := newTestEngine(t, tr, &fakeReporter{}, nil)

	v, res := e.WaitDiscreteInput(context.Background(), 1, 99, 0, time.Second)
	if v != 0 || res != WaitMatched {
		t.Fatalf("value=%d result=%d", v, res)
	}
}

func TestWaitDiscreteInput_AbortBeforeFirstRead(t *testing.T) {
	tr := &fakeTransport{}
	e := newTestEngine(t, tr, &fakeReporter{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, res := e.WaitDiscreteInput(ctx, 1, 99, 1, time.Hour)
	if v != NoMatch || res != WaitAborted {
		t.Fatalf("value=%d result=%d", v, res)
	}
	if len(tr.sent) != 0 {
		t.Fatalf("reads=%d after abort", len(tr.sent))
	}
}

func TestWaitDiscreteInput_AbortDuringWait(t *testing.T) {
	tr := &fakeTransport{}
	e := newTestEngine(t, tr, &fakeReporter{}, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var v int32
	var res WaitResult
	go func() {
		v, res = e.WaitDiscreteInput(ctx, 1, 99, 1, time.Hour)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("wait did not abort")
	}

	if v != NoMatch || res != WaitAborted {
		t.Fatalf("value=%d result=%d", v, res)
	}
}

func TestExecuteWait_TimeoutRaisesAlarm(t *testing.T) {
	tr := &fakeTransport{}
	rep := &fakeReporter{}
	e := newTestEngine(t, tr, rep, nil)

	b := waitBlock(1, 100, 1, 0.005)
	if err := e.Validate(b); err != nil {
		t.Fatalf("Validate err=%v", err)
	}
	e.Execute(context.Background(), b)

	if len(rep.alarms) != 1 || rep.alarms[0] != host.AlarmWaitTimeout {
		t.Fatalf("alarms=%v", rep.alarms)
	}
}

func TestExecuteWait_MatchRaisesNothing(t *testing.T) {
	tr := &fakeTransport{
		respond: func(msg *frame.Frame, cb transport.Callbacks) {
			respondValue(msg, cb, 1)
		},
	}
	rep := &fakeReporter{}
	e := newTestEngine(t, tr, rep, nil)

	b := waitBlock(1, 100, 1, 5)
	if err := e.Validate(b); err != nil {
		t.Fatalf("Validate err=%v", err)
	}
	e.Execute(context.Background(), b)

	if len(rep.alarms) != 0 {
		t.Fatalf("alarms=%v", rep.alarms)
	}
	if got := e.Result(); got != 1 {
		t.Fatalf("Result=%d, want 1", got)
	}
}
