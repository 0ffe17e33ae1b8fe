package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"newsletter_pipeline/internal/domain"
	"newsletter_pipeline/internal/filter"
)

type ExtractionStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewExtractionStore(db *sqlx.DB, tm *TransactionManager) *ExtractionStore {
	return &ExtractionStore{db: db, tm: tm}
}

// SaveExtraction writes one run and all its newsletters and links in a
// single transaction. A run is persisted whole or not at all.
func (s *ExtractionStore) SaveExtraction(ctx context.Context, extraction *domain.Extraction) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, s.db)

		_, err := exec.ExecContext(txCtx, `
			INSERT INTO extractions (id, created_at, days_back, max_results)
			VALUES ($1, $2, $3, $4)`,
			extraction.ID, extraction.CreatedAt, extraction.DaysBack, extraction.MaxResults,
		)
		if err != nil {
			return fmt.Errorf("insert extraction: %w", err)
		}

		for i := range extraction.Results {
			if err := s.saveNewsletter(txCtx, exec, extraction.ID, &extraction.Results[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ExtractionStore) saveNewsletter(ctx context.Context, exec sqlx.ExtContext, extractionID string, result *domain.NewsletterResult) error {
	var emailID int64
	err := exec.QueryRowxContext(ctx, `
		INSERT INTO email_content (extraction_id, subject, sender, date_header)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		extractionID, result.Subject, result.Sender, result.Date,
	).Scan(&emailID)
	if err != nil {
		return fmt.Errorf("insert email content: %w", err)
	}

	for _, article := range result.Articles {
		_, err := exec.ExecContext(ctx, `
			INSERT INTO extracted_links (email_id, url, original_url, curator_description, accepted, reason)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			emailID, article.URL, article.OriginalURL, article.CuratorDescription, true, filter.ReasonAccepted,
		)
		if err != nil {
			return fmt.Errorf("insert extracted link: %w", err)
		}
	}

	for _, rejected := range result.Rejected {
		_, err := exec.ExecContext(ctx, `
			INSERT INTO extracted_links (email_id, url, original_url, curator_description, accepted, reason)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			emailID, rejected.URL, nil, nil, false, rejected.Reason,
		)
		if err != nil {
			return fmt.Errorf("insert rejected link: %w", err)
		}
	}
	return nil
}

type extractionRow struct {
	ID         string    `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	DaysBack   int       `db:"days_back"`
	MaxResults int       `db:"max_results"`
}

type emailRow struct {
	ID         int64  `db:"id"`
	Subject    string `db:"subject"`
	Sender     string `db:"sender"`
	DateHeader string `db:"date_header"`
}

type linkRow struct {
	EmailID            int64   `db:"email_id"`
	URL                string  `db:"url"`
	OriginalURL        *string `db:"original_url"`
	CuratorDescription *string `db:"curator_description"`
	Accepted           bool    `db:"accepted"`
	Reason             string  `db:"reason"`
}

// GetExtraction loads one persisted run with all its newsletters and
// links. Returns sql.ErrNoRows when the id is unknown.
func (s *ExtractionStore) GetExtraction(ctx context.Context, id string) (*domain.Extraction, error) {
	var row extractionRow
	err := s.db.GetContext(ctx, &row, `
		SELECT id, created_at, days_back, max_results
		FROM extractions
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	extraction := &domain.Extraction{
		ID:         row.ID,
		CreatedAt:  row.CreatedAt,
		DaysBack:   row.DaysBack,
		MaxResults: row.MaxResults,
	}

	results, err := s.loadResults(ctx, id)
	if err != nil {
		return nil, err
	}
	extraction.Results = results
	return extraction, nil
}

// ListExtractions returns persisted runs, newest first, without their
// newsletter payloads.
func (s *ExtractionStore) ListExtractions(ctx context.Context, limit int) ([]domain.Extraction, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []extractionRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, created_at, days_back, max_results
		FROM extractions
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Extraction, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Extraction{
			ID:         row.ID,
			CreatedAt:  row.CreatedAt,
			DaysBack:   row.DaysBack,
			MaxResults: row.MaxResults,
		})
	}
	return out, nil
}

func (s *ExtractionStore) loadResults(ctx context.Context, extractionID string) ([]domain.NewsletterResult, error) {
	var emails []emailRow
	err := s.db.SelectContext(ctx, &emails, `
		SELECT id, subject, sender, date_header
		FROM email_content
		WHERE extraction_id = $1
		ORDER BY id`, extractionID)
	if err != nil {
		return nil, err
	}
	if len(emails) == 0 {
		return []domain.NewsletterResult{}, nil
	}

	var links []linkRow
	err = s.db.SelectContext(ctx, &links, `
		SELECT l.email_id, l.url, l.original_url, l.curator_description, l.accepted, l.reason
		FROM extracted_links l
		JOIN email_content e ON e.id = l.email_id
		WHERE e.extraction_id = $1
		ORDER BY l.id`, extractionID)
	if err != nil {
		return nil, err
	}

	byEmail := make(map[int64][]linkRow)
	for _, link := range links {
		byEmail[link.EmailID] = append(byEmail[link.EmailID], link)
	}

	results := make([]domain.NewsletterResult, 0, len(emails))
	for _, email := range emails {
		result := domain.NewsletterResult{
			Subject:  email.Subject,
			Sender:   email.Sender,
			Date:     email.DateHeader,
			Articles: []domain.Article{},
		}
		for _, link := range byEmail[email.ID] {
			if link.Accepted {
				result.Articles = append(result.Articles, domain.Article{
					URL:                link.URL,
					OriginalURL:        link.OriginalURL,
					CuratorDescription: link.CuratorDescription,
				})
			} else {
				result.Rejected = append(result.Rejected, domain.FilterDecision{
					URL:      link.URL,
					Accepted: false,
					Reason:   link.Reason,
				})
			}
		}
		results = append(results, result)
	}
	return results, nil
}
