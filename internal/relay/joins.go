package relay

import (
	"sync"

	"github.com/lguibr/pinball/internal/board"
)

// joinTable tracks, per board name, which remote board occupies each
// of its four walls (spec.md §4.5 wall-join semantics).
type joinTable struct {
	mu    sync.Mutex
	walls map[string]map[board.Wall]string
}

func newJoinTable() *joinTable {
	return &joinTable{walls: make(map[string]map[board.Wall]string)}
}

// set records a↔wall↔b and returns whichever board previously
// occupied that wall on a, if different from b (so the caller can
// notify it of eviction). Setting the same pair twice is a no-op that
// reports no eviction, keeping repeated joins idempotent (spec.md §8).
func (j *joinTable) set(a string, w board.Wall, b string) (evicted string, evictedOK bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.walls[a] == nil {
		j.walls[a] = make(map[board.Wall]string)
	}
	prior, had := j.walls[a][w]
	j.walls[a][w] = b
	if had && prior != b {
		return prior, true
	}
	return "", false
}

func (j *joinTable) clear(a string, w board.Wall) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.walls[a] != nil {
		delete(j.walls[a], w)
	}
}

func (j *joinTable) get(a string, w board.Wall) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	m := j.walls[a]
	if m == nil {
		return "", false
	}
	v, ok := m[w]
	return v, ok
}

// portalTable tracks which remote boards have announced a live portal
// (spec.md §4.5: "each side publishes connectPortal=/disconnectPortal=
// as its portals become reachable").
type portalTable struct {
	mu   sync.Mutex
	live map[string]bool
}

func newPortalTable() *portalTable {
	return &portalTable{live: make(map[string]bool)}
}

func (p *portalTable) setLive(portalName string, live bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.live[portalName] = live
}

func (p *portalTable) isLive(portalName string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live[portalName]
}
