package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter_pipeline/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeMailbox(t *testing.T, mailbox Mailbox) string {
	t.Helper()
	data, err := json.Marshal(mailbox)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mailbox.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func rfc5322(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006 15:04:05 -0700")
}

func TestFetchNewsletters_All(t *testing.T) {
	now := time.Now()
	path := writeMailbox(t, Mailbox{Messages: []Message{
		{Subject: "Weekly AI", From: "news@alphasignal.ai", Date: rfc5322(now), HTML: "<html>a</html>"},
		{Subject: "The Rundown", From: "crew@therundown.ai", Date: rfc5322(now), HTML: "<html>b</html>"},
	}})

	source := New(Config{Path: path}, testLogger())
	records, err := source.FetchNewsletters(context.Background(), domain.FetchParams{})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Weekly AI", records[0].Subject)
	assert.Equal(t, "news@alphasignal.ai", records[0].Sender)
	assert.Equal(t, "<html>a</html>", records[0].RawHTML)
}

func TestFetchNewsletters_SenderFilter(t *testing.T) {
	now := time.Now()
	path := writeMailbox(t, Mailbox{Messages: []Message{
		{Subject: "Wanted", From: "News <news@alphasignal.ai>", Date: rfc5322(now)},
		{Subject: "Unwanted", From: "spam@other.example", Date: rfc5322(now)},
	}})

	source := New(Config{Path: path, Senders: []string{"alphasignal.ai"}}, testLogger())
	records, err := source.FetchNewsletters(context.Background(), domain.FetchParams{})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Wanted", records[0].Subject)
}

func TestFetchNewsletters_ParamsSendersOverrideConfig(t *testing.T) {
	now := time.Now()
	path := writeMailbox(t, Mailbox{Messages: []Message{
		{Subject: "A", From: "a@first.example", Date: rfc5322(now)},
		{Subject: "B", From: "b@second.example", Date: rfc5322(now)},
	}})

	source := New(Config{Path: path, Senders: []string{"first.example"}}, testLogger())
	records, err := source.FetchNewsletters(context.Background(), domain.FetchParams{
		Senders: []string{"second.example"},
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].Subject)
}

func TestFetchNewsletters_DaysBack(t *testing.T) {
	now := time.Now()
	path := writeMailbox(t, Mailbox{Messages: []Message{
		{Subject: "Fresh", From: "a@example.com", Date: rfc5322(now.Add(-24 * time.Hour))},
		{Subject: "Stale", From: "a@example.com", Date: rfc5322(now.AddDate(0, 0, -30))},
		{Subject: "No date", From: "a@example.com", Date: "not a date"},
	}})

	source := New(Config{Path: path}, testLogger())
	records, err := source.FetchNewsletters(context.Background(), domain.FetchParams{DaysBack: 7})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Fresh", records[0].Subject)
	assert.Equal(t, "No date", records[1].Subject)
}

func TestFetchNewsletters_MaxResults(t *testing.T) {
	now := time.Now()
	var messages []Message
	for i := 0; i < 5; i++ {
		messages = append(messages, Message{
			Subject: fmt.Sprintf("Issue %d", i),
			From:    "a@example.com",
			Date:    rfc5322(now),
		})
	}
	path := writeMailbox(t, Mailbox{Messages: messages})

	source := New(Config{Path: path}, testLogger())
	records, err := source.FetchNewsletters(context.Background(), domain.FetchParams{MaxResults: 3})

	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestFetchNewsletters_MissingFile(t *testing.T) {
	source := New(Config{Path: filepath.Join(t.TempDir(), "missing.json")}, testLogger())

	_, err := source.FetchNewsletters(context.Background(), domain.FetchParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read mailbox dump")
}

func TestFetchNewsletters_MalformedDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mailbox.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	source := New(Config{Path: path}, testLogger())
	_, err := source.FetchNewsletters(context.Background(), domain.FetchParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse mailbox dump")
}

func TestFetchNewsletters_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := New(Config{Path: "irrelevant"}, testLogger())
	_, err := source.FetchNewsletters(ctx, domain.FetchParams{})
	assert.ErrorIs(t, err, context.Canceled)
}
