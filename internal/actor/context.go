package actor

// Context is passed to an Actor's Receive method for the message it is
// currently handling.
type Context interface {
	Engine() *Engine
	Self() *PID
	Sender() *PID
	Message() interface{}
	// RequestID is non-empty when the current message arrived via
	// Engine.Ask; Reply must be called exactly once in that case.
	RequestID() string
	Reply(v interface{})
}

type context struct {
	engine    *Engine
	self      *PID
	sender    *PID
	message   interface{}
	requestID string
	replyCh   chan interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }
func (c *context) RequestID() string    { return c.requestID }

func (c *context) Reply(v interface{}) {
	if c.replyCh == nil {
		return
	}
	select {
	case c.replyCh <- v:
	default:
	}
}

// Actor processes messages delivered to its mailbox, one at a time.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh Actor instance; called once per Spawn.
type Producer func() Actor

// Props configures how an actor is produced.
type Props struct {
	produce Producer
}

// NewProps wraps a Producer in Props for Engine.Spawn.
func NewProps(p Producer) *Props {
	if p == nil {
		panic("actor: producer cannot be nil")
	}
	return &Props{produce: p}
}
