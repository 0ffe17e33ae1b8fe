// Package resolve follows newsletter tracking redirects to their final
// destination and memoizes results for the duration of a pipeline run.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"newsletter_pipeline/internal/domain"
)

const userAgent = "Mozilla/5.0 (compatible; NewsletterBot/1.0)"

const (
	defaultMaxRetries = 2
	defaultRetryPause = 500 * time.Millisecond
)

type Resolver struct {
	client     *http.Client
	maxRetries int
	retryPause time.Duration
	logger     *slog.Logger
}

// New builds a resolver whose requests are bounded by timeout. Redirects
// are followed by the underlying client up to its default hop limit.
func New(timeout time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		client:     &http.Client{Timeout: timeout},
		maxRetries: defaultMaxRetries,
		retryPause: defaultRetryPause,
		logger:     logger.With("component", "resolver"),
	}
}

// Resolve follows redirects for rawURL and reports the final destination.
// Failures are returned as a status on the result, never as an error; the
// pipeline decides per-link what to do with timeouts and errors.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) domain.ResolvedLink {
	result := domain.ResolvedLink{OriginalURL: rawURL}

	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				result.Status = classify(ctx.Err())
				return result
			case <-time.After(r.retryPause):
			}
		}
		result.Attempts = attempt + 1

		final, err := r.follow(ctx, rawURL)
		if err == nil {
			result.ResolvedURL = &final
			result.IsRedirect = final != rawURL
			result.Status = domain.ResolveSuccess
			return result
		}
		lastErr = err
	}

	result.Status = classify(lastErr)
	r.logger.Warn("resolution failed",
		"url", rawURL,
		"attempts", result.Attempts,
		"status", result.Status,
		"error", lastErr,
	)
	return result
}

// follow issues a HEAD and, when the destination refuses it with a 4xx/5xx,
// repeats the chain with GET. Some trackers only honor GET. The final
// response's status code does not fail the resolution: bot-protected
// sites answer 403 to this User-Agent, yet the redirect chain has still
// been followed to the real article. Only transport errors count as
// failures.
func (r *Resolver) follow(ctx context.Context, rawURL string) (string, error) {
	final, status, err := r.do(ctx, http.MethodHead, rawURL)
	if err != nil {
		return "", err
	}
	if status < http.StatusBadRequest {
		return final, nil
	}

	final, _, err = r.do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return "", err
	}
	return final, nil
}

func (r *Resolver) do(ctx context.Context, method, rawURL string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), resp.StatusCode, nil
}

func classify(err error) domain.ResolveStatus {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.ResolveTimeout
	}
	return domain.ResolveError
}
