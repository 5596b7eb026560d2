package model

import (
	"crypto/md5"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-tui/rules"
	"github.com/sheikhrachel/go-gol-tui/utils"
)

// AliveChance is the percentage of cells populated alive by NewGrid and Reset.
const AliveChance = 20

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrGridTooLarge is returned when width*height cannot be addressed.
	ErrGridTooLarge = errors.New("grid too large to allocate")
)

// Source supplies the random draws used to populate a grid.
type Source interface {
	// Reseed re-initializes the generator ahead of a fresh population.
	Reseed()
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithWorkers splits each generation across n goroutines. Values below 2 keep
// the update pass on the calling goroutine.
func WithWorkers(n int) Option {
	return func(g *Grid) { g.workers = n }
}

// WithPool borrows the scratch buffers Hash needs from pool instead of
// allocating one per call.
func WithPool(pool *GridPool) Option {
	return func(g *Grid) { g.pool = pool }
}

// Grid is a fixed-size toroidal board. Cells are kept in two row-major
// buffers; cur names the one holding the visible generation and the other is
// scratch space for the next Step.
type Grid struct {
	width      int
	height     int
	generation uint64

	buffers [2][]bool
	cur     int

	src     Source
	pool    *GridPool
	workers int
}

// NewGrid allocates a width x height grid with roughly AliveChance percent of
// its cells alive. A nil src seeds from the wall clock.
func NewGrid(width, height int, src Source, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	if height > math.MaxInt/width {
		return nil, errors.Wrapf(ErrGridTooLarge, "[NewGrid] %dx%d cells", width, height)
	}
	if src == nil {
		src = utils.NewClockSource()
	}

	g := &Grid{width: width, height: height, src: src}
	for _, opt := range opts {
		opt(g)
	}

	size := width * height
	g.buffers = [2][]bool{make([]bool, size), make([]bool, size)}

	g.populate()
	return g, nil
}

// Destroy releases the grid's buffers. It is safe to call on a nil grid and
// more than once; afterwards the grid answers every query as an empty one.
func (g *Grid) Destroy() {
	if g == nil || g.buffers[0] == nil {
		return
	}
	g.buffers = [2][]bool{}
	g.width, g.height, g.generation, g.cur = 0, 0, 0, 0
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	if g == nil {
		return 0
	}
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	if g == nil {
		return 0
	}
	return g.height
}

// GetGeneration returns the number of steps taken since creation or the last Reset.
func (g *Grid) GetGeneration() uint64 {
	if g == nil {
		return 0
	}
	return g.generation
}

// GetCell returns the state of a cell. Coordinates outside the grid read as dead.
func (g *Grid) GetCell(x, y int) bool {
	if g == nil || x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.buffers[g.cur][y*g.width+x]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if g == nil || x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.buffers[g.cur][y*g.width+x] = alive
}

// Clear kills every cell without touching the generation counter.
func (g *Grid) Clear() {
	if g == nil {
		return
	}
	clear(g.buffers[g.cur])
}

// CountLiveNeighbors counts the live cells among the eight around (x, y),
// wrapping across the edges.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	if g == nil || g.buffers[g.cur] == nil {
		return 0
	}
	return g.countNeighbors(g.buffers[g.cur], x, y)
}

func (g *Grid) countNeighbors(cells []bool, x, y int) int {
	w, h := g.width, g.height
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := ((y+dy)%h + h) % h
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w + w) % w
			if cells[ny*w+nx] {
				count++
			}
		}
	}
	return count
}

// Step advances the grid by one generation. Every cell reads the current
// buffer only; the buffers trade roles once all of them have been written.
func (g *Grid) Step() {
	if g == nil || g.buffers[g.cur] == nil {
		return
	}
	cur, next := g.buffers[g.cur], g.buffers[1-g.cur]

	if g.workers > 1 && g.height > 1 {
		g.stepParallel(cur, next)
	} else {
		g.stepRows(cur, next, 0, g.height)
	}

	g.cur = 1 - g.cur
	g.generation++
}

func (g *Grid) stepRows(cur, next []bool, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		row := y * g.width
		for x := 0; x < g.width; x++ {
			next[row+x] = rules.ApplyConwayRules(g.countNeighbors(cur, x, y), cur[row+x])
		}
	}
}

func (g *Grid) stepParallel(cur, next []bool) {
	var (
		eg            errgroup.Group
		numWorkers    = min(g.workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.stepRows(cur, next, startRow, endRow)
			return nil
		})
	}

	// Row bands never fail; Wait is the barrier before the swap.
	_ = eg.Wait()
}

// Reset repopulates the grid in place with fresh random content and sets the
// generation back to zero.
func (g *Grid) Reset() {
	if g == nil || g.buffers[g.cur] == nil {
		return
	}
	g.populate()
	g.generation = 0
}

func (g *Grid) populate() {
	clear(g.buffers[1-g.cur])
	g.src.Reseed()
	cells := g.buffers[g.cur]
	for i := range cells {
		cells[i] = g.src.Intn(100) < AliveChance
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	if g == nil {
		return 0
	}
	for _, alive := range g.buffers[g.cur] {
		if alive {
			count++
		}
	}
	return
}

// Snapshot returns a copy of the current generation in row-major order.
func (g *Grid) Snapshot() []bool {
	if g == nil {
		return nil
	}
	return append([]bool(nil), g.buffers[g.cur]...)
}

// Hash returns an MD5 digest of the current generation.
func (g *Grid) Hash() string {
	h := md5.New()
	if g != nil {
		cells := g.buffers[g.cur]
		var buf []byte
		if g.pool != nil {
			buf = g.pool.Get(len(cells))
			defer g.pool.Put(buf)
		} else {
			buf = make([]byte, len(cells))
		}
		for i, alive := range cells {
			buf[i] = 0
			if alive {
				buf[i] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
