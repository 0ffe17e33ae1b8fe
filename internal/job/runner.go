package job

import (
	"context"
	"log/slog"

	"newsletter_pipeline/internal/domain"
)

// Runner launches extraction runs in the background and reflects their
// lifecycle into the tracker. The spawned run is detached from the
// caller's request context; a closed HTTP connection must not cancel it.
type Runner struct {
	tracker   *Tracker
	pipeline  Pipeline
	publisher Publisher
	logger    *slog.Logger
}

func NewRunner(tracker *Tracker, pipeline Pipeline, publisher Publisher, logger *slog.Logger) *Runner {
	return &Runner{
		tracker:   tracker,
		pipeline:  pipeline,
		publisher: publisher,
		logger:    logger.With("component", "job_runner"),
	}
}

// Start registers a job and kicks off its run. The returned snapshot is
// the pending job; callers poll the tracker for progress.
func (r *Runner) Start(params domain.FetchParams, userRef *string) domain.ExtractionJob {
	job := r.tracker.Create(userRef)
	go r.run(job.ID, params)
	return job
}

func (r *Runner) run(id string, params domain.FetchParams) {
	ctx := context.Background()
	r.tracker.StartProcessing(id)

	extraction, stats, err := r.pipeline.Run(ctx, params, func(progress int, message string) {
		r.tracker.Progress(id, progress, message)
	})
	if err != nil {
		r.logger.Error("extraction run failed", "job_id", id, "error", err)
		r.tracker.Fail(id, err.Error())
		r.publish(ctx, id)
		return
	}

	r.tracker.Complete(id, extraction.Results, stats)
	r.publish(ctx, id)
}

func (r *Runner) publish(ctx context.Context, id string) {
	if r.publisher == nil {
		return
	}
	job, ok := r.tracker.Get(id)
	if !ok {
		return
	}
	if err := r.publisher.PublishExtraction(ctx, &job); err != nil {
		r.logger.Warn("publish extraction event failed", "job_id", id, "error", err)
	}
}
