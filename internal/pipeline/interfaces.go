package pipeline

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsletter_pipeline/internal/domain"
)

type Source interface {
	ID() string
	Name() string
	FetchNewsletters(ctx context.Context, params domain.FetchParams) ([]domain.NewsletterRecord, error)
}

type LinkExtractor interface {
	Extract(rawHTML string) []domain.ExtractedLink
}

type LinkResolver interface {
	Resolve(ctx context.Context, rawURL string) domain.ResolvedLink
}

type ExtractionStore interface {
	SaveExtraction(ctx context.Context, extraction *domain.Extraction) error
}

type FilterConfigStore interface {
	GetFilterConfig(ctx context.Context) (domain.FilterConfig, error)
}
