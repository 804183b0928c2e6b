package bookingid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const DefaultPrefix = "SHOE"

// Generator produces booking transaction ids: a prefix followed by a ULID.
// Ids are sortable by creation time and unique within the process even when
// several are generated in the same millisecond.
type Generator struct {
	prefix string

	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

func New(prefix string) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{
		prefix:  prefix,
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(g.now()), g.entropy)
	return g.prefix + id.String()
}
