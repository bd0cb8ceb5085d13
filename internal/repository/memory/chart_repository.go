package memory

import (
	"sync"
	"time"

	"ai-chartgen-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// ChartRepository stores generated chart payloads keyed for later
// retrieval/sharing. Updates replace the payload in full (overwrite, not
// merge) and never extend the record's lifetime past its creation-anchored
// TTL.
type ChartRepository struct {
	cache *cache.Cache
	ttl   time.Duration
	mu    sync.Mutex
}

func NewChartRepository(ttl time.Duration) *ChartRepository {
	c := cache.New(ttl, ttl/2)
	return &ChartRepository{
		cache: c,
		ttl:   ttl,
	}
}

func (r *ChartRepository) Create(payload map[string]interface{}, sessionID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	chart := entity.Chart{
		Id:        NewID(),
		Payload:   payload,
		SessionId: sessionID,
		CreatedAt: time.Now(),
	}
	r.cache.Set(chart.Id, chart, cache.DefaultExpiration)
	return chart.Id
}

func (r *ChartRepository) Get(chartID string) (*entity.Chart, bool) {
	if !IsValidID(chartID) {
		return nil, false
	}
	if x, found := r.cache.Get(chartID); found {
		chart := x.(entity.Chart)
		return &chart, true
	}
	return nil, false
}

// Update overwrites the stored payload and stamps UpdatedAt, preserving
// CreatedAt. The re-Set uses the remaining TTL so an update never pushes
// back the chart's expiry.
func (r *ChartRepository) Update(chartID string, payload map[string]interface{}) bool {
	if !IsValidID(chartID) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(chartID)
	if !found {
		return false
	}
	chart := x.(entity.Chart)

	remaining := time.Until(chart.CreatedAt.Add(r.ttl))
	if remaining <= 0 {
		r.cache.Delete(chartID)
		return false
	}

	now := time.Now()
	chart.Payload = payload
	chart.UpdatedAt = &now
	r.cache.Set(chartID, chart, remaining)
	return true
}

func (r *ChartRepository) Delete(chartID string) {
	r.cache.Delete(chartID)
}

// DeleteOrphans removes every chart whose owning session no longer exists,
// independent of the chart's own age. Returns the number of charts removed.
func (r *ChartRepository) DeleteOrphans(hasSession func(sessionID string) bool) int {
	removed := 0
	for id, item := range r.cache.Items() {
		chart, ok := item.Object.(entity.Chart)
		if !ok {
			continue
		}
		if !hasSession(chart.SessionId) {
			r.cache.Delete(id)
			removed++
		}
	}
	return removed
}
