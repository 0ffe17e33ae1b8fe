package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"newsletter_pipeline/internal/domain"
)

// FilterConfigStore persists the classifier rule set as a single JSON
// document row. When no row exists the built-in defaults apply.
type FilterConfigStore struct {
	db *sqlx.DB
}

func NewFilterConfigStore(db *sqlx.DB) *FilterConfigStore {
	return &FilterConfigStore{db: db}
}

func (s *FilterConfigStore) GetFilterConfig(ctx context.Context) (domain.FilterConfig, error) {
	var document []byte
	err := s.db.GetContext(ctx, &document, `
		SELECT document FROM filter_config WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultFilterConfig(), nil
	}
	if err != nil {
		return domain.FilterConfig{}, fmt.Errorf("load filter config: %w", err)
	}

	var cfg domain.FilterConfig
	if err := json.Unmarshal(document, &cfg); err != nil {
		return domain.FilterConfig{}, fmt.Errorf("decode filter config: %w", err)
	}
	return cfg, nil
}

func (s *FilterConfigStore) SaveFilterConfig(ctx context.Context, cfg domain.FilterConfig) error {
	document, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode filter config: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO filter_config (id, document, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at`,
		document, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save filter config: %w", err)
	}
	return nil
}
