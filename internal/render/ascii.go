package render

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ClearScreen clears the terminal, matching the teacher's
// cross-platform render.ClearScreen.
func ClearScreen() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "cls")
	default:
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}

// glyphs maps one character per gadget/ball kind, in the spirit of the
// teacher's grayscale-ramp ASCII renderer (render/ascii.go), but keyed
// by kind rather than pixel luminosity since a pinball frame has no
// pixel buffer — only named gadgets and balls at board coordinates.
const (
	glyphEmpty    = '.'
	glyphWall     = '#'
	glyphBumper   = 'o'
	glyphAbsorber = '='
	glyphPortal   = '@'
	glyphFlipper  = '/'
	glyphBall     = '*'
)

// RenderASCII rasterizes one Snapshot onto a resolution×resolution
// character grid, reference-quality only (spec.md §1 Non-goal: no
// real GUI). Later entries win ties at a cell, in the fixed priority
// bumper < absorber < portal < flipper < ball, so a ball is always
// visible even sitting on a gadget. Walls are not drawn.
func RenderASCII(s SnapshotLike, resolution int) string {
	grid := make([][]byte, resolution)
	for i := range grid {
		grid[i] = make([]byte, resolution)
		for j := range grid[i] {
			grid[i][j] = glyphEmpty
		}
	}

	cell := func(x, y float64) (int, int, bool) {
		gx := int(x / s.Size() * float64(resolution))
		gy := int(y / s.Size() * float64(resolution))
		if gx < 0 || gx >= resolution || gy < 0 || gy >= resolution {
			return 0, 0, false
		}
		return gx, gy, true
	}

	for _, bp := range s.BumperPositions() {
		if gx, gy, ok := cell(bp[0], bp[1]); ok {
			grid[gy][gx] = glyphBumper
		}
	}
	for _, ap := range s.AbsorberPositions() {
		if gx, gy, ok := cell(ap[0], ap[1]); ok {
			grid[gy][gx] = glyphAbsorber
		}
	}
	for _, pp := range s.PortalPositions() {
		if gx, gy, ok := cell(pp[0], pp[1]); ok {
			grid[gy][gx] = glyphPortal
		}
	}
	for _, fp := range s.FlipperPositions() {
		if gx, gy, ok := cell(fp[0], fp[1]); ok {
			grid[gy][gx] = glyphFlipper
		}
	}
	for _, bp := range s.BallPositions() {
		if gx, gy, ok := cell(bp[0], bp[1]); ok {
			grid[gy][gx] = glyphBall
		}
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%s (%dx%d)\n", s.Name(), resolution, resolution)
	for _, row := range grid {
		out.Write(row)
		out.WriteByte('\n')
	}
	return out.String()
}

// SnapshotLike narrows board.Snapshot to exactly what RenderASCII
// walks, so callers can also feed it a test double.
type SnapshotLike interface {
	Name() string
	Size() float64
	BallPositions() [][2]float64
	BumperPositions() [][2]float64
	AbsorberPositions() [][2]float64
	PortalPositions() [][2]float64
	FlipperPositions() [][2]float64
}

