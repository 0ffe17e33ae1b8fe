// Package jsonfile serves newsletters from an exported mailbox dump.
// It stands in for a live mail account; anything that can produce the
// dump format can feed the pipeline.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/mail"
	"os"
	"strings"
	"time"

	"newsletter_pipeline/internal/domain"
)

const (
	SourceID   = "jsonfile"
	SourceName = "JSON mailbox dump"
)

type Config struct {
	Path    string
	Senders []string
}

type Source struct {
	path    string
	senders []string
	logger  *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		path:    cfg.Path,
		senders: cfg.Senders,
		logger:  logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// FetchNewsletters loads the dump and returns the messages matching
// params, newest last (dump order is preserved).
func (s *Source) FetchNewsletters(ctx context.Context, params domain.FetchParams) ([]domain.NewsletterRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read mailbox dump: %w", err)
	}

	var mailbox Mailbox
	if err := json.Unmarshal(data, &mailbox); err != nil {
		return nil, fmt.Errorf("parse mailbox dump: %w", err)
	}

	senders := s.senders
	if len(params.Senders) > 0 {
		senders = params.Senders
	}

	var cutoff time.Time
	if params.DaysBack > 0 {
		cutoff = time.Now().AddDate(0, 0, -params.DaysBack)
	}

	var records []domain.NewsletterRecord
	for _, msg := range mailbox.Messages {
		if !matchesSender(msg.From, senders) {
			continue
		}
		if !cutoff.IsZero() && !s.withinCutoff(msg, cutoff) {
			continue
		}

		records = append(records, domain.NewsletterRecord{
			Subject: msg.Subject,
			Sender:  msg.From,
			Date:    msg.Date,
			RawHTML: msg.HTML,
		})

		if params.MaxResults > 0 && len(records) >= params.MaxResults {
			break
		}
	}

	s.logger.Debug("loaded newsletters",
		"total", len(mailbox.Messages),
		"matched", len(records),
	)
	return records, nil
}

func (s *Source) withinCutoff(msg Message, cutoff time.Time) bool {
	sent, err := mail.ParseDate(msg.Date)
	if err != nil {
		// An unparseable header never silently drops a newsletter.
		s.logger.Warn("unparseable date header, keeping message",
			"subject", msg.Subject,
			"date", msg.Date,
		)
		return true
	}
	return sent.After(cutoff)
}

func matchesSender(from string, senders []string) bool {
	if len(senders) == 0 {
		return true
	}
	lower := strings.ToLower(from)
	for _, sender := range senders {
		if strings.Contains(lower, strings.ToLower(sender)) {
			return true
		}
	}
	return false
}
