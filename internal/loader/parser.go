package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/gadget"
	"github.com/lguibr/pinball/internal/geom"
)

// KeyBindings maps a key name to the gadget it triggers, split by
// press/release (spec.md §6 "keydown|keyup key=KEY action=NAME"). The
// core Board has no notion of a keyboard; a binding is only consumed
// by an external input.TriggerSource (spec.md §1 Non-goal).
type KeyBindings struct {
	Down map[string]string
	Up   map[string]string
}

// Descriptor is everything a board file declares: the constructed
// Board plus the keyboard bindings the renderer's key-event plumbing
// is expected to honor.
type Descriptor struct {
	Board *board.Board
	Keys  KeyBindings
}

// LoadFile opens path and parses it (spec.md §6 CLI surface default
// "boards/default.fb").
func LoadFile(path string, cfg config.Config) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()
	return Parse(f, cfg)
}

// Parse reads the line-oriented board grammar (spec.md §6) from r and
// builds a Board, using bufio.Scanner the way the teacher's
// server.readLoop streams lines off a socket. Every descriptor error it
// detects (bad syntax, duplicate names, a ball outside the playfield)
// is fatal at load (spec.md §7): the first one encountered aborts
// parsing. Gadget coordinates are not range-checked.
func Parse(r io.Reader, cfg config.Config) (*Descriptor, error) {
	b := board.New("unnamed", cfg)
	keys := KeyBindings{Down: make(map[string]string), Up: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		f, ok, err := parseLine(lineNo, scanner.Text())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := applyLine(b, &keys, f, cfg); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	b.FinalizeTriggers()
	return &Descriptor{Board: b, Keys: keys}, nil
}

func applyLine(b *board.Board, keys *KeyBindings, f fields, cfg config.Config) error {
	switch f.keyword {
	case "board":
		return applyBoardLine(b, f)
	case "ball":
		return applyBallLine(b, f)
	case "squareBumper":
		return applyBumperLine(b, f, gadget.NewSquareBumper)
	case "circleBumper":
		return applyBumperLine(b, f, gadget.NewCircleBumper)
	case "triangleBumper":
		return applyTriangleBumperLine(b, f)
	case "absorber":
		return applyAbsorberLine(b, f)
	case "leftFlipper":
		return applyFlipperLine(b, f, gadget.NewLeftFlipper)
	case "rightFlipper":
		return applyFlipperLine(b, f, gadget.NewRightFlipper)
	case "portal":
		return applyPortalLine(b, f)
	case "fire":
		return applyFireLine(b, f)
	case "keydown":
		return applyKeyLine(keys.Down, f)
	case "keyup":
		return applyKeyLine(keys.Up, f)
	default:
		return fmt.Errorf("loader: line %d: unknown keyword %q", f.lineNo, f.keyword)
	}
}

func applyBoardLine(b *board.Board, f fields) error {
	if name, ok := f.str("name"); ok {
		if err := b.SetName(name); err != nil {
			return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
		}
	}
	if _, ok := f.str("gravity"); ok {
		g, err := f.optFloat("gravity", 0)
		if err != nil {
			return err
		}
		if err := b.SetGravity(g); err != nil {
			return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
		}
	}
	if _, ok := f.str("friction1"); ok {
		mu, err := f.optFloat("friction1", 0)
		if err != nil {
			return err
		}
		if err := b.SetFriction1(mu); err != nil {
			return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
		}
	}
	if _, ok := f.str("friction2"); ok {
		mu, err := f.optFloat("friction2", 0)
		if err != nil {
			return err
		}
		if err := b.SetFriction2(mu); err != nil {
			return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
		}
	}
	return nil
}

func applyBallLine(b *board.Board, f fields) error {
	name, err := f.require("name")
	if err != nil {
		return err
	}
	x, err := f.requireFloat("x")
	if err != nil {
		return err
	}
	y, err := f.requireFloat("y")
	if err != nil {
		return err
	}
	vx, err := f.requireFloat("xVelocity")
	if err != nil {
		return err
	}
	vy, err := f.requireFloat("yVelocity")
	if err != nil {
		return err
	}
	bl := ball.Ball{Name: name, Position: geom.Vector2{X: x, Y: y}, Velocity: geom.Vector2{X: vx, Y: vy}}
	if err := b.AddBall(bl); err != nil {
		return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
	}
	return nil
}

func applyBumperLine(b *board.Board, f fields, ctor func(name string, gx, gy int) *gadget.Bumper) error {
	name, err := f.require("name")
	if err != nil {
		return err
	}
	gx, err := f.requireInt("x")
	if err != nil {
		return err
	}
	gy, err := f.requireInt("y")
	if err != nil {
		return err
	}
	if err := b.AddBumper(ctor(name, gx, gy)); err != nil {
		return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
	}
	return nil
}

func applyTriangleBumperLine(b *board.Board, f fields) error {
	name, err := f.require("name")
	if err != nil {
		return err
	}
	gx, err := f.requireInt("x")
	if err != nil {
		return err
	}
	gy, err := f.requireInt("y")
	if err != nil {
		return err
	}
	orientDeg, err := f.optInt("orientation", 0)
	if err != nil {
		return err
	}
	orientation, err := parseOrientation(f.lineNo, orientDeg)
	if err != nil {
		return err
	}
	if err := b.AddBumper(gadget.NewTriangleBumper(name, gx, gy, orientation)); err != nil {
		return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
	}
	return nil
}

func applyAbsorberLine(b *board.Board, f fields) error {
	name, err := f.require("name")
	if err != nil {
		return err
	}
	gx, err := f.requireInt("x")
	if err != nil {
		return err
	}
	gy, err := f.requireInt("y")
	if err != nil {
		return err
	}
	width, err := f.requireInt("width")
	if err != nil {
		return err
	}
	height, err := f.requireInt("height")
	if err != nil {
		return err
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("loader: line %d: absorber %q width/height must be >= 1", f.lineNo, name)
	}
	if err := b.AddAbsorber(gadget.NewAbsorber(name, gx, gy, width, height)); err != nil {
		return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
	}
	return nil
}

func applyFlipperLine(b *board.Board, f fields, ctor func(name string, gx, gy int) *gadget.Flipper) error {
	name, err := f.require("name")
	if err != nil {
		return err
	}
	gx, err := f.requireInt("x")
	if err != nil {
		return err
	}
	gy, err := f.requireInt("y")
	if err != nil {
		return err
	}
	// orientation is accepted per the grammar but the flipper's rest/
	// engaged pair is fixed by its handedness (spec.md §3); a non-zero
	// value has no further effect beyond validating it parses.
	if _, err := f.optInt("orientation", 0); err != nil {
		return err
	}
	if err := b.AddFlipper(ctor(name, gx, gy)); err != nil {
		return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
	}
	return nil
}

func applyPortalLine(b *board.Board, f fields) error {
	name, err := f.require("name")
	if err != nil {
		return err
	}
	gx, err := f.requireInt("x")
	if err != nil {
		return err
	}
	gy, err := f.requireInt("y")
	if err != nil {
		return err
	}
	peer, err := f.require("otherPortal")
	if err != nil {
		return err
	}
	remoteBoard, _ := f.str("otherBoard")
	pt := gadget.NewPortal(name, float64(gx)+0.5, float64(gy)+0.5, remoteBoard, peer)
	if err := b.AddPortal(pt); err != nil {
		return fmt.Errorf("loader: line %d: %w", f.lineNo, err)
	}
	return nil
}

func applyFireLine(b *board.Board, f fields) error {
	trigger, err := f.require("trigger")
	if err != nil {
		return err
	}
	action, err := f.require("action")
	if err != nil {
		return err
	}
	b.SetTrigger(trigger, action)
	return nil
}

func applyKeyLine(table map[string]string, f fields) error {
	key, err := f.require("key")
	if err != nil {
		return err
	}
	action, err := f.require("action")
	if err != nil {
		return err
	}
	table[key] = action
	return nil
}

func parseOrientation(lineNo int, deg int) (geom.Angle, error) {
	switch deg {
	case 0:
		return geom.Deg0, nil
	case 90:
		return geom.Deg90, nil
	case 180:
		return geom.Deg180, nil
	case 270:
		return geom.Deg270, nil
	default:
		return 0, fmt.Errorf("loader: line %d: orientation=%d must be one of 0,90,180,270", lineNo, deg)
	}
}
