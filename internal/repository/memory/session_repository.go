package memory

import (
	"sync"
	"time"

	"ai-chartgen-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionRepository stores grounding sessions in memory with a fixed TTL.
// Sessions are immutable after creation except for TTL expiry.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
	mu    sync.Mutex
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// go-cache's janitor handles age-based eviction; purge at half the TTL
	c := cache.New(ttl, ttl/2)
	return &SessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

func (r *SessionRepository) Create(text string, fileNames []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := entity.Session{
		Id:        NewID(),
		Text:      text,
		FileNames: append([]string(nil), fileNames...),
		CreatedAt: time.Now(),
	}
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
	return session.Id
}

func (r *SessionRepository) Get(sessionID string) (*entity.Session, bool) {
	if !IsValidID(sessionID) {
		return nil, false
	}
	if x, found := r.cache.Get(sessionID); found {
		session := x.(entity.Session)
		return &session, true
	}
	return nil, false
}

// Has is the cheap existence probe used by the orphan sweep.
func (r *SessionRepository) Has(sessionID string) bool {
	if !IsValidID(sessionID) {
		return false
	}
	_, found := r.cache.Get(sessionID)
	return found
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
