package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsletter_pipeline/internal/domain"
)

type JobStarter interface {
	Start(params domain.FetchParams, userRef *string) domain.ExtractionJob
}

type JobRegistry interface {
	Get(id string) (domain.ExtractionJob, bool)
	List() []domain.ExtractionJob
}

type ExtractionReader interface {
	GetExtraction(ctx context.Context, id string) (*domain.Extraction, error)
	ListExtractions(ctx context.Context, limit int) ([]domain.Extraction, error)
}

type FilterConfigStore interface {
	GetFilterConfig(ctx context.Context) (domain.FilterConfig, error)
	SaveFilterConfig(ctx context.Context, cfg domain.FilterConfig) error
}
