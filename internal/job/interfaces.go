package job

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsletter_pipeline/internal/domain"
	"newsletter_pipeline/internal/pipeline"
)

type Pipeline interface {
	Run(ctx context.Context, params domain.FetchParams, report pipeline.ProgressFunc) (*domain.Extraction, *domain.RunStats, error)
}

type Publisher interface {
	PublishExtraction(ctx context.Context, job *domain.ExtractionJob) error
	Close() error
}
