package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
)

// Generator creates identifiers for queued notifications.
type Generator interface {
	New() string
}

// Sequence yields ids that sort in creation order within one daemon run.
// The random prefix keeps ids from different runs apart.
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

func NewSequence() *Sequence {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return &Sequence{prefix: hex.EncodeToString(buf)}
}

func (s *Sequence) New() string {
	return fmt.Sprintf("%s-%08d", s.prefix, s.next.Add(1))
}
