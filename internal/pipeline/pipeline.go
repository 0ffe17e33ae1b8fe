// Package pipeline orchestrates one extraction run: fetch newsletters,
// extract candidate links, resolve redirects, classify, persist.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"newsletter_pipeline/internal/config"
	"newsletter_pipeline/internal/domain"
	"newsletter_pipeline/internal/filter"
	"newsletter_pipeline/internal/resolve"
	"newsletter_pipeline/internal/urlutil"
)

// ProgressFunc receives coarse run milestones. Callers may pass nil.
type ProgressFunc func(progress int, message string)

type Service struct {
	source    Source
	extractor LinkExtractor
	resolver  LinkResolver
	store     ExtractionStore
	configs   FilterConfigStore
	logger    *slog.Logger
	config    config.PipelineConfig
}

func NewService(
	source Source,
	extractor LinkExtractor,
	resolver LinkResolver,
	store ExtractionStore,
	configs FilterConfigStore,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *Service {
	return &Service{
		source:    source,
		extractor: extractor,
		resolver:  resolver,
		store:     store,
		configs:   configs,
		logger:    logger.With("source", source.ID()),
		config:    cfg,
	}
}

// Run executes one extraction over the newsletters matching params.
// Newsletters that yield no accepted links still appear in the result so
// callers can tell "nothing found" from "never looked".
func (s *Service) Run(ctx context.Context, params domain.FetchParams, report ProgressFunc) (*domain.Extraction, *domain.RunStats, error) {
	startTime := time.Now()
	if report == nil {
		report = func(int, string) {}
	}

	s.logger.Info("starting extraction run",
		"source_name", s.source.Name(),
		"days_back", params.DaysBack,
		"max_results", params.MaxResults,
	)

	report(10, "fetching newsletters")
	newsletters, err := s.source.FetchNewsletters(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch newsletters: %w", err)
	}
	s.logger.Info("fetched newsletters", "count", len(newsletters))

	filterCfg := s.loadFilterConfig(ctx)

	report(20, "extracting and resolving links")
	stats := &domain.RunStats{Newsletters: len(newsletters)}
	cache := resolve.NewCache()

	results := make([]domain.NewsletterResult, 0, len(newsletters))
	for i := range newsletters {
		results = append(results, s.processNewsletter(ctx, &newsletters[i], filterCfg, cache, stats))
	}

	extraction := &domain.Extraction{
		ID:         uuid.NewString(),
		CreatedAt:  startTime,
		DaysBack:   params.DaysBack,
		MaxResults: params.MaxResults,
		Results:    results,
	}

	report(90, "saving results")
	if s.store != nil {
		if err := s.store.SaveExtraction(ctx, extraction); err != nil {
			return extraction, stats, fmt.Errorf("save extraction: %w", err)
		}
	}

	stats.Duration = time.Since(startTime)
	report(100, "complete")

	s.logger.Info("extraction run completed",
		"extraction_id", extraction.ID,
		"newsletters", stats.Newsletters,
		"links_found", stats.LinksFound,
		"junk_filtered", stats.JunkFiltered,
		"duplicates", stats.Duplicates,
		"resolved", stats.Resolved,
		"resolve_failures", stats.ResolveFailures,
		"accepted", stats.Accepted,
		"rejected", stats.Rejected,
		"cache_hits", cache.Hits(),
		"duration", stats.Duration,
	)

	return extraction, stats, nil
}

func (s *Service) loadFilterConfig(ctx context.Context) domain.FilterConfig {
	if s.configs == nil {
		return domain.DefaultFilterConfig()
	}
	cfg, err := s.configs.GetFilterConfig(ctx)
	if err != nil {
		s.logger.Warn("load filter config failed, using defaults", "error", err)
		return domain.DefaultFilterConfig()
	}
	return cfg
}

func (s *Service) processNewsletter(
	ctx context.Context,
	record *domain.NewsletterRecord,
	filterCfg domain.FilterConfig,
	cache *resolve.Cache,
	stats *domain.RunStats,
) domain.NewsletterResult {
	result := domain.NewsletterResult{
		Subject:  record.Subject,
		Sender:   record.Sender,
		Date:     record.Date,
		Articles: []domain.Article{},
	}

	links := s.extractor.Extract(record.RawHTML)
	stats.LinksFound += len(links)

	candidates := s.selectCandidates(links, stats)
	if len(candidates) == 0 {
		return result
	}

	resolved := s.resolveAll(ctx, candidates, cache)

	seen := make(map[string]bool)
	for i, link := range candidates {
		res := resolved[i]

		finalURL := link.URL
		if res.Status == domain.ResolveSuccess {
			stats.Resolved++
			if res.ResolvedURL != nil {
				finalURL = *res.ResolvedURL
			}
		} else {
			// A dead tracker still gets classified under its original
			// URL; junk trackers fail the content rules anyway.
			stats.ResolveFailures++
		}
		finalURL = urlutil.Canonicalize(finalURL)

		decision := filter.Classify(finalURL, filterCfg)
		if !decision.Accepted {
			stats.Rejected++
			result.Rejected = append(result.Rejected, decision)
			continue
		}
		if seen[finalURL] {
			stats.Duplicates++
			continue
		}
		seen[finalURL] = true
		stats.Accepted++

		article := domain.Article{
			URL:                finalURL,
			CuratorDescription: link.CuratorDescription,
		}
		if res.IsRedirect {
			original := link.URL
			article.OriginalURL = &original
		}
		result.Articles = append(result.Articles, article)
	}

	s.logger.Debug("newsletter processed",
		"subject", record.Subject,
		"links", len(links),
		"accepted", len(result.Articles),
	)
	return result
}

// selectCandidates drops junk, dedups by canonical form, and applies the
// per-newsletter cap with direct links taken before tracking links.
func (s *Service) selectCandidates(links []domain.ExtractedLink, stats *domain.RunStats) []domain.ExtractedLink {
	var direct, tracking []domain.ExtractedLink
	seen := make(map[string]bool)
	for _, link := range links {
		if resolve.IsJunk(link.URL) {
			stats.JunkFiltered++
			continue
		}
		key := urlutil.Canonicalize(link.URL)
		if seen[key] {
			stats.Duplicates++
			continue
		}
		seen[key] = true

		if resolve.IsTracking(link.URL) {
			tracking = append(tracking, link)
		} else {
			direct = append(direct, link)
		}
	}

	candidates := append(direct, tracking...)
	if max := s.config.MaxLinksPerEmail; max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates
}

// resolveAll resolves candidates concurrently under the worker bound.
// The cache guarantees at most one network resolution per canonical URL
// across the whole run.
func (s *Service) resolveAll(ctx context.Context, candidates []domain.ExtractedLink, cache *resolve.Cache) []domain.ResolvedLink {
	workers := s.config.ResolveWorkers
	if workers < 1 {
		workers = 1
	}
	resolved := make([]domain.ResolvedLink, len(candidates))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, link := range candidates {
		wg.Add(1)
		go func(i int, rawURL string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			key := urlutil.Canonicalize(rawURL)
			resolved[i] = cache.Do(key, func() domain.ResolvedLink {
				return s.resolver.Resolve(ctx, rawURL)
			})
		}(i, link.URL)
	}
	wg.Wait()

	return resolved
}
