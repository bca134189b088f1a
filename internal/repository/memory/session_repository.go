package memory

import (
	"sync"

	"github.com/patrickmn/go-cache"

	"floria-be/pkg/store"
)

// SessionRepository owns the in-memory conversation state. Sessions are
// never expired: they live for the process lifetime, which is a deliberate
// trade-off of the design (and a known resource-exhaustion risk).
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
		locks: map[string]*sync.Mutex{},
	}
}

// GetOrCreate returns the session for the key, seeding a new one with the
// system prompt on first use.
func (r *SessionRepository) GetOrCreate(sessionID, systemPrompt string) *store.Session {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session)
	}
	s := store.NewSession(sessionID, systemPrompt)
	r.cache.Set(sessionID, s, cache.NoExpiration)
	return s
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.NoExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Lock serializes processing for one session key and returns the unlock
// function. Different keys proceed independently; requests on the same key
// queue up, which preserves the turn-sequencing invariant.
func (r *SessionRepository) Lock(sessionID string) func() {
	r.mu.Lock()
	l, ok := r.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[sessionID] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
