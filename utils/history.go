package utils

// historySize is how many recent grid hashes are kept for cycle detection.
const historySize = 5

// History remembers the hashes of recent generations to spot static states and short cycles
type History struct {
	hashes []string
}

// Push adds a generation hash, keeping only the most recent ones
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded generations,
// which covers still lifes and period 2 and 3 oscillators.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}
