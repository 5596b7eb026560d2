package model

import "github.com/sheikhrachel/go-gol-tui/utils"

// Pattern is a small shape described by its live-cell offsets from the
// top-left corner.
type Pattern [][2]int

var (
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	// Blinker is a horizontal line of three that oscillates with period 2.
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	// Block is the 2x2 still life.
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// Add stamps p onto the grid with its top-left corner at (startX, startY).
// Offsets that fall past an edge wrap to the opposite side.
func (g *Grid) Add(p Pattern, startX, startY int) {
	if g == nil || g.width == 0 {
		return
	}
	for _, off := range p {
		x := ((startX+off[0])%g.width + g.width) % g.width
		y := ((startY+off[1])%g.height + g.height) % g.height
		g.Set(x, y, true)
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) { g.Add(Glider, startX, startY) }

// AddBlinker adds a blinker oscillator pattern
func (g *Grid) AddBlinker(startX, startY int) { g.Add(Blinker, startX, startY) }

// AddBlock adds a block still life
func (g *Grid) AddBlock(startX, startY int) { g.Add(Block, startX, startY) }

// ResetWithPattern clears the grid and places the named pattern near the
// centre. Unknown names leave the grid empty.
func (g *Grid) ResetWithPattern(name string) {
	if g == nil {
		return
	}
	g.Clear()
	g.generation = 0
	cx, cy := g.width/2-1, g.height/2-1
	switch name {
	case utils.PatternGlider:
		g.AddGlider(cx, cy)
	case utils.PatternBlinker:
		g.AddBlinker(cx, cy)
	case utils.PatternBlock:
		g.AddBlock(cx, cy)
	}
}
