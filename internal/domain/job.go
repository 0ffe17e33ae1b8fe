package domain

import "time"

// JobStatus is the lifecycle state of an extraction job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// ExtractionJob wraps one pipeline run as an asynchronous job. It is
// mutated only by the job tracker and read by polling callers.
type ExtractionJob struct {
	ID              string
	UserRef         *string
	Status          JobStatus
	Progress        int // 0-100, non-decreasing while non-terminal
	ProgressMessage *string
	ErrorMessage    *string
	CreatedAt       time.Time
	CompletedAt     *time.Time
	Results         []NewsletterResult
	Stats           *RunStats
}
