package memory

import (
	"sync"
	"time"

	"ai-chartgen-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const (
	defaultProgress  = "Waiting in queue..."
	successProgress  = "Chart generated successfully"
	fallbackJobError = "generation failed due to an internal error"
)

// JobPatch is a partial update: nil fields leave the stored value untouched.
type JobPatch struct {
	Status   *entity.JobStatus
	Progress *string
	Result   map[string]interface{}
	Error    *string
}

// JobRepository tracks asynchronous pipeline jobs. Jobs live shorter than
// sessions/charts: pollers only need a small grace period after completion.
type JobRepository struct {
	cache *cache.Cache
	ttl   time.Duration
	mu    sync.Mutex
}

func NewJobRepository(ttl time.Duration) *JobRepository {
	c := cache.New(ttl, ttl/2)
	return &JobRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Create inserts a queued job and returns its identifier immediately.
func (r *JobRepository) Create() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	job := entity.Job{
		Id:        NewID(),
		Status:    entity.JobStatusQueued,
		Progress:  defaultProgress,
		CreatedAt: time.Now(),
	}
	r.cache.Set(job.Id, job, cache.DefaultExpiration)
	return job.Id
}

func (r *JobRepository) Get(jobID string) (*entity.Job, bool) {
	if !IsValidID(jobID) {
		return nil, false
	}
	if x, found := r.cache.Get(jobID); found {
		job := x.(entity.Job)
		return &job, true
	}
	return nil, false
}

// Update merges the patch into the stored job under the repository lock so
// concurrent updates to the same record apply in arrival order. A terminal
// job refuses any transition back to queued/processing.
func (r *JobRepository) Update(jobID string, patch JobPatch) bool {
	if !IsValidID(jobID) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(jobID)
	if !found {
		return false
	}
	job := x.(entity.Job)

	if patch.Status != nil && job.Status.Terminal() && !(*patch.Status).Terminal() {
		return false
	}

	remaining := time.Until(job.CreatedAt.Add(r.ttl))
	if remaining <= 0 {
		r.cache.Delete(jobID)
		return false
	}

	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.Progress != nil {
		job.Progress = *patch.Progress
	}
	if patch.Result != nil {
		job.Result = patch.Result
	}
	if patch.Error != nil {
		job.Error = *patch.Error
	}

	now := time.Now()
	job.UpdatedAt = &now
	r.cache.Set(jobID, job, remaining)
	return true
}

// MarkProcessing surfaces fine-grained progress to pollers. Safe to call
// repeatedly, once per pipeline stage.
func (r *JobRepository) MarkProcessing(jobID, progress string) bool {
	status := entity.JobStatusProcessing
	return r.Update(jobID, JobPatch{Status: &status, Progress: &progress})
}

// Complete attaches the result payload and moves the job to its terminal
// success state. Calling it twice just overwrites the payload.
func (r *JobRepository) Complete(jobID string, result map[string]interface{}) bool {
	status := entity.JobStatusComplete
	progress := successProgress
	return r.Update(jobID, JobPatch{Status: &status, Progress: &progress, Result: result})
}

// Fail moves the job to its terminal error state. An empty message is
// replaced with a generic fallback so the error field is never blank.
func (r *JobRepository) Fail(jobID, errMsg string) bool {
	if errMsg == "" {
		errMsg = fallbackJobError
	}
	status := entity.JobStatusError
	return r.Update(jobID, JobPatch{Status: &status, Error: &errMsg})
}
