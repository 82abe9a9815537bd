package actor

import (
	"runtime/debug"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

const defaultMailboxSize = 1024

// process is the running instance of one actor: its mailbox and the
// goroutine driving Receive calls sequentially.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	props   *Props
	mailbox chan *envelope
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *envelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

func (p *process) send(env *envelope) {
	_, isStopping := env.message.(Stopping)
	_, isStopped := env.message.(Stopped)
	if p.stopped.Load() && !isStopping && !isStopped {
		return
	}
	select {
	case p.mailbox <- env:
	default:
		logrus.WithFields(logrus.Fields{"actor": p.pid.ID, "type": logTypeName(env.message)}).
			Warn("actor mailbox full, dropping message")
	}
}

func logTypeName(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	type named interface{ String() string }
	if n, ok := v.(named); ok {
		return n.String()
	}
	return "message"
}

func (p *process) run() {
	var stoppingInvoked bool

	defer func() {
		p.stopped.Store(true)
		defer p.engine.remove(p.pid)
		if p.actor != nil {
			p.invoke(Stopped{}, nil, "", nil)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{"actor": p.pid.ID, "panic": r}).
				Error("actor panicked: " + string(debug.Stack()))
			if p.stopped.CompareAndSwap(false, true) {
				closeOnce(p.stopCh)
				if p.actor != nil && !stoppingInvoked {
					p.invoke(Stopping{}, nil, "", nil)
				}
			}
		}
	}()

	p.actor = p.props.produce()
	if p.actor == nil {
		panic("actor: producer returned nil actor")
	}
	p.invoke(Started{}, nil, "", nil)

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) && !stoppingInvoked {
				p.invoke(Stopping{}, nil, "", nil)
				stoppingInvoked = true
			}
			return
		case env, ok := <-p.mailbox:
			if !ok {
				return
			}
			_, isStopping := env.message.(Stopping)
			if p.stopped.Load() && !isStopping {
				continue
			}
			if isStopping {
				if p.stopped.CompareAndSwap(false, true) {
					p.invoke(env.message, env.sender, env.requestID, env.replyCh)
					stoppingInvoked = true
					closeOnce(p.stopCh)
				}
				continue
			}
			p.invoke(env.message, env.sender, env.requestID, env.replyCh)
		}
	}
}

func closeOnce(ch chan struct{}) {
	select {
	case <-ch:
	default:
		close(ch)
	}
}

func (p *process) invoke(msg interface{}, sender *PID, requestID string, replyCh chan interface{}) {
	ctx := &context{
		engine:    p.engine,
		self:      p.pid,
		sender:    sender,
		message:   msg,
		requestID: requestID,
		replyCh:   replyCh,
	}
	p.actor.Receive(ctx)
}
