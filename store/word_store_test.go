package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordStoreAdd(t *testing.T) {
	ws := NewWordStore()

	added := ws.Add([]string{"CAT", "DOG", "CAT"})
	assert.Equal(t, []string{"CAT", "DOG"}, added)

	added = ws.Add([]string{"DOG", "EEL"})
	assert.Equal(t, []string{"EEL"}, added)

	assert.Equal(t, 3, ws.Len())
	assert.Equal(t, []string{"CAT", "DOG", "EEL"}, ws.Snapshot())
	assert.True(t, ws.Contains("EEL"))
	assert.False(t, ws.Contains("COW"))
}

func TestWordStoreSnapshotIsACopy(t *testing.T) {
	ws := NewWordStore()
	ws.Add([]string{"CAT"})

	snap := ws.Snapshot()
	snap[0] = "DOG"
	assert.Equal(t, []string{"CAT"}, ws.Snapshot())
}

func TestWordStoreConcurrentAdd(t *testing.T) {
	ws := NewWordStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ws.Add([]string{"ONE", "TWO", "THREE"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, ws.Len())
}
