// Package board aggregates the gadgets, balls and link state that
// make up one playfield (spec.md §3 "Board", §4.3).
package board

import (
	"fmt"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/gadget"
	"github.com/lguibr/pinball/internal/geom"
	"github.com/sirupsen/logrus"
)

type pendingTrigger struct {
	trigger string
	action  string
}

// Board owns the mutable simulation state for one playfield. Gadgets
// and balls are added only during construction; after the first
// simulation step, the ball list is rewritten wholesale each frame
// rather than mutated (spec.md §9 "Balls as values"), while flippers
// update their angle in place.
type Board struct {
	name       string
	size       float64
	gravity    float64
	friction1  float64
	friction2  float64
	started    bool

	balls     []ball.Ball
	gadgets   map[string]gadget.Gadget
	gadgetsBy gadgetCollections

	walls      map[Wall]geom.Segment
	joinMap    map[Wall]string
	portalLive map[string]bool

	triggerMap map[string][]string
	pending    []pendingTrigger

	log *logrus.Entry
}

type gadgetCollections struct {
	bumpers   []*gadget.Bumper
	absorbers []*gadget.Absorber
	flippers  []*gadget.Flipper
	portals   []*gadget.Portal
}

// New builds an empty board sized per cfg, ready for Add* calls.
func New(name string, cfg config.Config) *Board {
	return &Board{
		name:       name,
		size:       cfg.BoardSize,
		gravity:    cfg.Gravity,
		friction1:  cfg.Friction1,
		friction2:  cfg.Friction2,
		gadgets:    make(map[string]gadget.Gadget),
		walls:      wallSegments(cfg.BoardSize),
		joinMap:    make(map[Wall]string),
		portalLive: make(map[string]bool),
		triggerMap: make(map[string][]string),
		log:        logrus.WithField("board", name),
	}
}

func (b *Board) Name() string    { return b.name }
func (b *Board) Size() float64   { return b.size }
func (b *Board) Gravity() float64 { return b.gravity }
func (b *Board) Friction1() float64 { return b.friction1 }
func (b *Board) Friction2() float64 { return b.friction2 }

func (b *Board) Balls() []ball.Ball {
	out := make([]ball.Ball, len(b.balls))
	copy(out, b.balls)
	return out
}

func (b *Board) WallSegment(w Wall) geom.Segment { return b.walls[w] }

// SetName renames the board. Mutators below are only valid before the
// first simulation step (spec.md §4.3).
func (b *Board) SetName(name string) error {
	if b.started {
		return fmt.Errorf("board: cannot rename after simulation has started")
	}
	b.name = name
	return nil
}

func (b *Board) SetGravity(g float64) error {
	if b.started {
		return fmt.Errorf("board: cannot set gravity after simulation has started")
	}
	b.gravity = g
	return nil
}

func (b *Board) SetFriction1(mu float64) error {
	if b.started {
		return fmt.Errorf("board: cannot set friction1 after simulation has started")
	}
	b.friction1 = mu
	return nil
}

func (b *Board) SetFriction2(mu float64) error {
	if b.started {
		return fmt.Errorf("board: cannot set friction2 after simulation has started")
	}
	b.friction2 = mu
	return nil
}

// MarkStarted freezes the gravity/friction/name mutators; called once
// by the simulator before its first frame.
func (b *Board) MarkStarted() { b.started = true }

func (b *Board) nameTaken(name string) bool {
	if _, ok := b.gadgets[name]; ok {
		return true
	}
	for _, bl := range b.balls {
		if bl.Name == name {
			return true
		}
	}
	return false
}

// AddBall inserts a ball, rejecting duplicate names or an out-of-range
// position (spec.md §3 invariant: ball centres remain strictly inside
// (0, L) on construction too).
func (b *Board) AddBall(bl ball.Ball) error {
	if bl.Name == "" {
		return fmt.Errorf("board: ball name must not be empty")
	}
	if b.nameTaken(bl.Name) {
		return fmt.Errorf("board: duplicate gadget/ball name %q", bl.Name)
	}
	if bl.Position.X <= 0 || bl.Position.X >= b.size || bl.Position.Y <= 0 || bl.Position.Y >= b.size {
		return fmt.Errorf("board: ball %q position %v outside (0,%g)", bl.Name, bl.Position, b.size)
	}
	b.balls = append(b.balls, bl)
	return nil
}

func (b *Board) addGadget(name string, g gadget.Gadget) error {
	if name == "" {
		return fmt.Errorf("board: gadget name must not be empty")
	}
	if b.nameTaken(name) {
		return fmt.Errorf("board: duplicate gadget/ball name %q", name)
	}
	b.gadgets[name] = g
	b.resolvePending()
	return nil
}

func (b *Board) AddBumper(bp *gadget.Bumper) error {
	if err := b.addGadget(bp.GadgetName(), bp); err != nil {
		return err
	}
	b.gadgetsBy.bumpers = append(b.gadgetsBy.bumpers, bp)
	return nil
}

func (b *Board) AddAbsorber(ab *gadget.Absorber) error {
	if err := b.addGadget(ab.GadgetName(), ab); err != nil {
		return err
	}
	b.gadgetsBy.absorbers = append(b.gadgetsBy.absorbers, ab)
	return nil
}

func (b *Board) AddFlipper(fl *gadget.Flipper) error {
	if err := b.addGadget(fl.GadgetName(), fl); err != nil {
		return err
	}
	b.gadgetsBy.flippers = append(b.gadgetsBy.flippers, fl)
	return nil
}

func (b *Board) AddPortal(pt *gadget.Portal) error {
	if err := b.addGadget(pt.GadgetName(), pt); err != nil {
		return err
	}
	b.gadgetsBy.portals = append(b.gadgetsBy.portals, pt)
	if pt.IsLocal() {
		b.portalLive[pt.GadgetName()] = true
	}
	return nil
}

func (b *Board) GadgetByName(name string) (gadget.Gadget, bool) {
	g, ok := b.gadgets[name]
	return g, ok
}

func (b *Board) Bumpers() []*gadget.Bumper     { return b.gadgetsBy.bumpers }
func (b *Board) Absorbers() []*gadget.Absorber { return b.gadgetsBy.absorbers }
func (b *Board) Flippers() []*gadget.Flipper   { return b.gadgetsBy.flippers }
func (b *Board) Portals() []*gadget.Portal     { return b.gadgetsBy.portals }

// SetTrigger records that firing `trigger` also fires `action`. An
// unknown name fails silently and is queued for deferred resolution,
// since the loader may reference gadgets not yet parsed (spec.md §4.3,
// §7 "Trigger resolution misses").
func (b *Board) SetTrigger(trigger, action string) {
	_, triggerOK := b.gadgets[trigger]
	_, actionOK := b.gadgets[action]
	if triggerOK && actionOK {
		b.triggerMap[trigger] = append(b.triggerMap[trigger], action)
		return
	}
	b.pending = append(b.pending, pendingTrigger{trigger: trigger, action: action})
}

func (b *Board) resolvePending() {
	if len(b.pending) == 0 {
		return
	}
	remaining := b.pending[:0]
	for _, p := range b.pending {
		_, triggerOK := b.gadgets[p.trigger]
		_, actionOK := b.gadgets[p.action]
		if triggerOK && actionOK {
			b.triggerMap[p.trigger] = append(b.triggerMap[p.trigger], p.action)
			continue
		}
		remaining = append(remaining, p)
	}
	b.pending = remaining
}

// FinalizeTriggers drops any fire= line whose trigger or action never
// resolved once the whole board file has been parsed (spec.md §7:
// "if still unresolved, silently dropped").
func (b *Board) FinalizeTriggers() {
	for _, p := range b.pending {
		b.log.WithFields(logrus.Fields{"trigger": p.trigger, "action": p.action}).
			Debug("dropping unresolved fire mapping")
	}
	b.pending = nil
}

// invokeAction performs a named gadget's own effect: an absorber
// emits its oldest queued ball, a flipper starts (or continues) a
// flip. Other gadget kinds have no directly-invokable effect.
func (b *Board) invokeAction(name string, cfg config.Config) {
	g, ok := b.gadgets[name]
	if !ok {
		return
	}
	switch v := g.(type) {
	case *gadget.Absorber:
		if ballName, pos, vel, ok := v.Emit(cfg); ok {
			b.balls = append(b.balls, ball.Ball{Name: ballName, Position: pos, Velocity: vel})
		}
	case *gadget.Flipper:
		v.Trigger()
	}
}

// TriggerByName performs the named gadget's own effect directly,
// independent of the trigger map (spec.md §4.3: used for keyboard
// triggers). Unknown names are a no-op.
func (b *Board) TriggerByName(name string, cfg config.Config) {
	b.invokeAction(name, cfg)
}

// FireCascade invokes every action chained to trigger (and,
// transitively, their own chained actions), guarding against
// revisiting the same gadget within one frame (spec.md §4.4 "Trigger
// cascade").
func (b *Board) FireCascade(trigger string, cfg config.Config, fired map[string]bool) {
	for _, action := range b.triggerMap[trigger] {
		if fired[action] {
			continue
		}
		fired[action] = true
		b.invokeAction(action, cfg)
		b.FireCascade(action, cfg, fired)
	}
}

// RemoveBallByName deletes the named ball from the free list, used
// when an absorber captures it or a portal/wall hand-off removes it
// locally.
func (b *Board) RemoveBallByName(name string) (ball.Ball, bool) {
	for i, bl := range b.balls {
		if bl.Name == name {
			b.balls = append(b.balls[:i], b.balls[i+1:]...)
			return bl, true
		}
	}
	return ball.Ball{}, false
}

// ReplaceBalls installs a freshly computed ball list, used by the
// simulator at the end of each frame (spec.md §9 "Balls as values").
func (b *Board) ReplaceBalls(balls []ball.Ball) { b.balls = balls }
