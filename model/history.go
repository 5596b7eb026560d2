package model

// History remembers the hashes of recent generations so a run that has
// settled into a still life or short cycle can be flagged.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps up to size recent states. A size of zero disables detection.
func NewHistory(size int) *History {
	return &History{size: size}
}

// Observe records the grid's current state and reports whether it repeats one
// of the remembered states.
func (h *History) Observe(g *Grid) bool {
	if h.size == 0 {
		return false
	}
	current := g.Hash()

	stagnant := false
	for _, seen := range h.hashes {
		if seen == current {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Clear forgets every remembered state.
func (h *History) Clear() {
	h.hashes = nil
}
