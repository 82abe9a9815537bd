package actor

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrTimeout is returned by Ask when no reply arrives within the given
// timeout.
var ErrTimeout = errors.New("actor: ask timed out")

// ErrNotFound is returned by Ask when the target PID is unknown.
var ErrNotFound = errors.New("actor: pid not found")

// Engine owns the set of live actors and routes messages between them.
type Engine struct {
	pidCounter uint64
	mu         sync.RWMutex
	procs      map[string]*process
	stopping   atomic.Bool
}

// NewEngine creates an empty actor engine.
func NewEngine() *Engine {
	return &Engine{procs: make(map[string]*process)}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor and returns its PID, or nil if the engine is
// shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		logrus.Warn("actor engine is stopping, refusing to spawn")
		return nil
	}
	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.procs[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	return pid
}

// Send delivers a fire-and-forget message to pid. sender may be nil.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	proc.send(&envelope{sender: sender, message: message})
}

// Ask sends message to pid and blocks until ctx.Reply is called by the
// receiving actor, or timeout elapses.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if pid == nil {
		return nil, ErrNotFound
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return nil, ErrNotFound
	}
	replyCh := make(chan interface{}, 1)
	requestID := fmt.Sprintf("ask-%d", atomic.AddUint64(&e.pidCounter, 1))
	proc.send(&envelope{message: message, requestID: requestID, replyCh: replyCh})

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case v := <-replyCh:
		return v, nil
	case <-timer.C:
		return nil, ErrTimeout
	}
}

// Stop asks the actor to shut down; it will finish processing Stopping
// then exit.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	proc.send(&envelope{message: Stopping{}})
	closeOnce(proc.stopCh)
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	proc, ok := e.procs[pid.ID]
	return proc, ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.procs, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops every live actor and waits up to timeout for them to
// exit before forcibly clearing the registry.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}
	e.mu.RLock()
	pids := make([]*PID, 0, len(e.procs))
	for _, proc := range e.procs {
		pids = append(pids, proc.pid)
	}
	e.mu.RUnlock()

	for _, pid := range pids {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.procs)
		e.mu.RUnlock()
		if remaining == 0 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}

	e.mu.Lock()
	remaining := len(e.procs)
	e.procs = make(map[string]*process)
	e.mu.Unlock()
	if remaining > 0 {
		logrus.WithField("remaining", remaining).Warn("actor engine shutdown timed out, forcing registry clear")
	}
}
