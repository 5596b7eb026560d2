package model

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const (
	gridPosBlock = '█'
	gridPosEmpty = ' '

	title        = " Conway's Game of Life "
	controlsLine = "[Q]Quit | [P]Play/Pause | [-/+]Speed | [SPACE]Step | [R]Reset"

	windowMargin = 1
	titleOffset  = 2
	gridTop      = 2
	gridLeft     = 1
	borderWidth  = 1
	panelHeight  = 3

	// MinTerminalWidth and MinTerminalHeight are the smallest terminal the
	// window layout fits in.
	MinTerminalWidth  = 90
	MinTerminalHeight = 20
)

// Status is the run state shown on the panel below the grid.
type Status struct {
	DelayMs    int
	Running    bool
	Stagnant   bool
	Population int
}

// StatusLine formats the panel text for a grid in the given state.
func StatusLine(generation uint64, s Status) string {
	state := "PAUSED"
	if s.Running {
		state = "RUNNING"
	}
	line := fmt.Sprintf("Generation: %d | Step delay: %d ms | State: %s | Alive: %d",
		generation, s.DelayMs, state, s.Population)
	if s.Stagnant {
		line += " | STAGNANT"
	}
	return line
}

// TerminalRenderer paints a grid and its status panel into a boxed window on
// a tcell screen.
type TerminalRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminalRenderer draws onto an already initialized screen.
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, style: tcell.StyleDefault}
}

// Display renders the visible part of the grid and the status panel, then
// flushes the screen.
func (r *TerminalRenderer) Display(g *Grid, status Status) {
	r.screen.Clear()

	sw, sh := r.screen.Size()
	x0, y0 := windowMargin, windowMargin
	w, h := sw-2*windowMargin, sh-2*windowMargin
	if w < 2*borderWidth+1 || h < gridTop+panelHeight+borderWidth+1 {
		r.screen.Show()
		return
	}

	r.drawBox(x0, y0, w, h)
	r.drawText(x0+titleOffset, y0, title)
	r.drawSeparator(x0, y0+1, w)

	visibleH := min(g.GetHeight(), h-panelHeight-gridTop-borderWidth)
	visibleW := min(g.GetWidth(), w-2*borderWidth)
	for y := 0; y < visibleH; y++ {
		for x := 0; x < visibleW; x++ {
			glyph := gridPosEmpty
			if g.GetCell(x, y) {
				glyph = gridPosBlock
			}
			r.screen.SetContent(x0+gridLeft+x, y0+gridTop+y, glyph, nil, r.style)
		}
	}

	panelTop := y0 + h - panelHeight - borderWidth
	r.drawSeparator(x0, panelTop, w)
	r.drawText(x0+borderWidth+1, panelTop+1, StatusLine(g.GetGeneration(), status))
	r.drawText(x0+borderWidth+1, panelTop+2, controlsLine)

	r.screen.Show()
}

// Sync repaints the whole terminal, used after a resize.
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}

func (r *TerminalRenderer) drawBox(x0, y0, w, h int) {
	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, nil, r.style)
		r.screen.SetContent(x, y1, tcell.RuneHLine, nil, r.style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, nil, r.style)
		r.screen.SetContent(x1, y, tcell.RuneVLine, nil, r.style)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, r.style)
	r.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, r.style)
	r.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, r.style)
	r.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, r.style)
}

func (r *TerminalRenderer) drawSeparator(x0, y, w int) {
	for x := x0 + 1; x < x0+w-1; x++ {
		r.screen.SetContent(x, y, tcell.RuneHLine, nil, r.style)
	}
	r.screen.SetContent(x0, y, tcell.RuneLTee, nil, r.style)
	r.screen.SetContent(x0+w-1, y, tcell.RuneRTee, nil, r.style)
}

// drawText writes s one cell per rune; text past the window border is clipped.
func (r *TerminalRenderer) drawText(x, y int, s string) {
	sw, _ := r.screen.Size()
	limit := sw - windowMargin - borderWidth
	for _, c := range s {
		if x >= limit {
			return
		}
		r.screen.SetContent(x, y, c, nil, r.style)
		x++
	}
}
