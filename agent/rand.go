package agent

import (
	"time"

	"golang.org/x/exp/rand"
)

// newRng returns a source seeded with seed, or with the clock when seed is zero.
func newRng(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
