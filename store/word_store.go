package store

import (
	"sync"
)

// WordStore keeps the normalized source words of one dictionary in insertion order,
// so the prefix structure can be rebuilt when the representation changes.
type WordStore struct {
	Mu    sync.RWMutex
	Words []string
	index map[string]struct{}
}

// NewWordStore creates an empty store.
func NewWordStore() *WordStore {
	return &WordStore{
		Words: make([]string, 0),
		index: make(map[string]struct{}),
	}
}

// Add appends words that are not yet stored and returns the ones actually added.
func (ws *WordStore) Add(words []string) []string {
	ws.Mu.Lock()
	defer ws.Mu.Unlock()

	added := make([]string, 0, len(words))
	for _, w := range words {
		if _, exists := ws.index[w]; exists {
			continue
		}
		ws.index[w] = struct{}{}
		ws.Words = append(ws.Words, w)
		added = append(added, w)
	}
	return added
}

// Snapshot returns a copy of the stored words.
func (ws *WordStore) Snapshot() []string {
	ws.Mu.RLock()
	defer ws.Mu.RUnlock()

	out := make([]string, len(ws.Words))
	copy(out, ws.Words)
	return out
}

// Contains reports whether the word is stored.
func (ws *WordStore) Contains(word string) bool {
	ws.Mu.RLock()
	defer ws.Mu.RUnlock()
	_, ok := ws.index[word]
	return ok
}

// Len returns the number of stored words.
func (ws *WordStore) Len() int {
	ws.Mu.RLock()
	defer ws.Mu.RUnlock()
	return len(ws.Words)
}
