package bookingid

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Run("uses prefix", func(t *testing.T) {
		g := New("TRX")
		id := g.Generate()

		assert.True(t, strings.HasPrefix(id, "TRX"))
		assert.Len(t, id, len("TRX")+26)
	})

	t.Run("default prefix", func(t *testing.T) {
		g := New("")
		assert.True(t, strings.HasPrefix(g.Generate(), DefaultPrefix))
	})

	t.Run("unique within the same millisecond", func(t *testing.T) {
		g := New("SHOE")
		fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		g.now = func() time.Time { return fixed }

		seen := make(map[string]struct{}, 1000)
		prev := ""
		for range 1000 {
			id := g.Generate()
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s", id)
			seen[id] = struct{}{}

			assert.Greater(t, id, prev)
			prev = id
		}
	})

	t.Run("unique across goroutines", func(t *testing.T) {
		g := New("SHOE")

		var (
			mu   sync.Mutex
			wg   sync.WaitGroup
			seen = make(map[string]struct{})
		)
		for range 8 {
			wg.Go(func() {
				for range 200 {
					id := g.Generate()
					mu.Lock()
					seen[id] = struct{}{}
					mu.Unlock()
				}
			})
		}
		wg.Wait()

		assert.Len(t, seen, 8*200)
	})
}
