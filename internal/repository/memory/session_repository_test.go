package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"floria-be/pkg/store"
)

func TestGetOrCreateSeedsSystemPrompt(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("s1", "prompt")
	assert.Len(t, s.Turns, 1)
	assert.Equal(t, store.RoleSystem, s.Turns[0].Role)

	// Second call returns the same live session.
	s.Append(store.RoleUser, "bonjour")
	again := repo.GetOrCreate("s1", "prompt")
	assert.Len(t, again.Turns, 2)
}

func TestSessionsAreIndependent(t *testing.T) {
	repo := NewSessionRepository()
	a := repo.GetOrCreate("a", "p")
	b := repo.GetOrCreate("b", "p")

	a.Slots[store.SlotPlant] = "ficus"
	assert.False(t, b.Slots.Has(store.SlotPlant))
}

func TestLockSerializesSameKey(t *testing.T) {
	repo := NewSessionRepository()

	var order []int
	var mu sync.Mutex
	var wg sync.WaitGroup

	unlock := repo.Lock("s1")
	wg.Add(1)
	go func() {
		defer wg.Done()
		u := repo.Lock("s1")
		defer u()
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
	}()

	mu.Lock()
	order = append(order, 1)
	mu.Unlock()
	unlock()
	wg.Wait()

	assert.Equal(t, []int{1, 2}, order)
}
