package booking

import (
	"io"
	"sync"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random (version 4) UUIDs. With a nil Reader it uses
// crypto/rand through uuid.NewString, and it falls back to that as well once
// Reader fails or runs dry.
type UUIDGenerator struct {
	Reader io.Reader

	mu sync.Mutex
}

func (g *UUIDGenerator) NewID() string {
	if g.Reader == nil {
		return uuid.NewString()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := uuid.NewRandomFromReader(g.Reader)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
