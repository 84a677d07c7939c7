package file

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunIDGenerator stamps balance and settlement runs with ULIDs. IDs from one
// generator sort in creation order, even within the same millisecond.
type RunIDGenerator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewRunIDGenerator creates a RunIDGenerator backed by the system clock and
// crypto/rand.
func NewRunIDGenerator() *RunIDGenerator {
	return newRunIDGenerator(time.Now, rand.Reader)
}

func newRunIDGenerator(now func() time.Time, entropy io.Reader) *RunIDGenerator {
	return &RunIDGenerator{
		now:     now,
		entropy: ulid.Monotonic(entropy, 0),
	}
}

// Generate returns the next run ID.
func (g *RunIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
