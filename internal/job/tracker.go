// Package job tracks asynchronous extraction runs for polling clients.
package job

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"newsletter_pipeline/internal/domain"
)

// Tracker is an in-memory registry of extraction jobs. Jobs move
// pending -> processing -> completed|failed; once terminal they never
// change again.
type Tracker struct {
	mu     sync.RWMutex
	jobs   map[string]*domain.ExtractionJob
	logger *slog.Logger
}

func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{
		jobs:   make(map[string]*domain.ExtractionJob),
		logger: logger.With("component", "job_tracker"),
	}
}

// Create registers a new pending job and returns its snapshot.
func (t *Tracker) Create(userRef *string) domain.ExtractionJob {
	job := &domain.ExtractionJob{
		ID:        uuid.NewString(),
		UserRef:   userRef,
		Status:    domain.JobPending,
		CreatedAt: time.Now(),
	}

	t.mu.Lock()
	t.jobs[job.ID] = job
	t.mu.Unlock()

	t.logger.Info("job created", "job_id", job.ID)
	return *job
}

// Get returns a snapshot of the job, if it exists.
func (t *Tracker) Get(id string) (domain.ExtractionJob, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	job, ok := t.jobs[id]
	if !ok {
		return domain.ExtractionJob{}, false
	}
	return *job, true
}

// List returns snapshots of all jobs, newest first.
func (t *Tracker) List() []domain.ExtractionJob {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.ExtractionJob, 0, len(t.jobs))
	for _, job := range t.jobs {
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// StartProcessing moves a pending job to processing.
func (t *Tracker) StartProcessing(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok || job.Status.Terminal() {
		t.warnLate(id, "start")
		return
	}
	job.Status = domain.JobProcessing
}

// Progress records a milestone. Progress never decreases; updates after
// a terminal transition are dropped, and a stale lower value leaves the
// message of the higher milestone in place.
func (t *Tracker) Progress(id string, progress int, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok || job.Status.Terminal() {
		t.warnLate(id, "progress")
		return
	}
	if progress > job.Progress {
		job.Progress = progress
		job.ProgressMessage = &message
	}
}

// Complete marks the job completed and attaches its results. The first
// terminal transition wins; later ones are dropped.
func (t *Tracker) Complete(id string, results []domain.NewsletterResult, stats *domain.RunStats) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok || job.Status.Terminal() {
		t.warnLate(id, "complete")
		return
	}

	now := time.Now()
	job.Status = domain.JobCompleted
	job.Progress = 100
	job.CompletedAt = &now
	job.Results = results
	job.Stats = stats

	message := "complete"
	if len(results) == 0 {
		// An empty window is a success, not a failure; tell the poller
		// what to try instead.
		message = "no newsletters found in range, try a longer window"
	}
	job.ProgressMessage = &message

	t.logger.Info("job completed", "job_id", id, "newsletters", len(results))
}

// Fail marks the job failed with a human-readable error message.
func (t *Tracker) Fail(id string, errMsg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok || job.Status.Terminal() {
		t.warnLate(id, "fail")
		return
	}

	now := time.Now()
	job.Status = domain.JobFailed
	job.CompletedAt = &now
	job.ErrorMessage = &errMsg

	t.logger.Warn("job failed", "job_id", id, "error", errMsg)
}

func (t *Tracker) warnLate(id, op string) {
	t.logger.Warn("update for missing or finished job ignored", "job_id", id, "op", op)
}
