package model

// historyDepth bounds how many fingerprints are kept; enough to catch
// static states and short-period oscillators like the blinker.
const historyDepth = 5

// History tracks recent board fingerprints for cycle detection. Boards
// are immutable values, so the history lives alongside the boards in
// whatever loop is stepping them rather than inside the board itself.
type History struct {
	hashes []string
}

// Push records the board's current state.
func (h *History) Push(b Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
}

// Stagnant reports whether the board matches one of the last few
// recorded states, i.e. the simulation is static or in a short cycle.
func (h *History) Stagnant(b Board) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := b.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}

	return false
}
