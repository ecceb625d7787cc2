package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

const historySize = 5

// Fingerprint returns an MD5 hash of the world's alive cells. Two worlds with
// the same alive set share a fingerprint regardless of their tracked frontier.
func Fingerprint(w *World) string {
	h := md5.New()
	buf := make([]byte, 16)
	for _, loc := range w.AliveCoordinates() {
		binary.BigEndian.PutUint64(buf[:8], uint64(loc.Row))
		binary.BigEndian.PutUint64(buf[8:], uint64(loc.Col))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History stores recent world fingerprints for cycle detection
type History struct {
	fingerprints []string
}

// Record adds the world's current state to history and maintains size
func (h *History) Record(w *World) {
	h.fingerprints = append(h.fingerprints, Fingerprint(w))

	// Keep only the last few states to detect cycles
	if len(h.fingerprints) > historySize {
		h.fingerprints = h.fingerprints[1:]
	}
}

// Len returns the number of recorded fingerprints
func (h *History) Len() int {
	return len(h.fingerprints)
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.fingerprints = nil
}

// IsStagnant checks if the world is extinct, static, or cycling with a period of
// at most three generations
func (h *History) IsStagnant(w *World) bool {
	if w.Population() == 0 {
		return true
	}
	if len(h.fingerprints) < 3 {
		return false
	}

	current := Fingerprint(w)
	for i := 1; i <= 3; i++ {
		if h.fingerprints[len(h.fingerprints)-i] == current {
			return true
		}
	}
	return false
}
