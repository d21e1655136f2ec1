package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

type captureSender struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (s *captureSender) SendEvent(ctx context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *captureSender) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestReporter(sender Sender) *Reporter {
	return NewReporter(Config{}, sender, testLogger())
}

func TestReportDelivers(t *testing.T) {
	sender := &captureSender{}
	r := newTestReporter(sender)

	r.Report(domain.Event{EventType: domain.EventClick, NewsletterID: "n1", TopicID: "t1"})
	r.Wait()

	events := sender.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventClick, events[0].EventType)
	assert.Equal(t, "n1", events[0].NewsletterID)
}

func TestReportSwallowsFailures(t *testing.T) {
	sender := &captureSender{err: errors.New("backend down")}
	r := newTestReporter(sender)

	// Nothing to assert beyond "the caller is not affected": no panic,
	// no error, Wait returns.
	r.Report(domain.Event{EventType: domain.EventSave, NewsletterID: "n1"})
	r.Wait()

	assert.Empty(t, sender.Events())
}

func TestLimiterDropsExcessWithoutBlocking(t *testing.T) {
	sender := &captureSender{}
	r := NewReporter(Config{EventsPerSecond: 0.001, Burst: 1}, sender, testLogger())

	r.Report(domain.Event{EventType: domain.EventClick, NewsletterID: "n1"})
	r.Report(domain.Event{EventType: domain.EventClick, NewsletterID: "n2"})
	r.Wait()

	assert.Len(t, sender.Events(), 1)
}

func TestViewImpressionDedup(t *testing.T) {
	sender := &captureSender{}
	r := newTestReporter(sender)
	view := r.NewView()

	bag := map[string]any{"page": "feed", "rank_position": 1}
	view.ImpressionOnce("n1", "t1", bag)
	view.ImpressionOnce("n1", "t1", bag)
	view.ImpressionOnce("n2", "t2", map[string]any{"page": "feed", "rank_position": 2})
	r.Wait()

	events := sender.Events()
	require.Len(t, events, 2)
	seen := map[string]bool{}
	for _, e := range events {
		assert.Equal(t, domain.EventImpression, e.EventType)
		seen[e.NewsletterID] = true
	}
	assert.True(t, seen["n1"])
	assert.True(t, seen["n2"])
}

func TestDedupScopedToView(t *testing.T) {
	sender := &captureSender{}
	r := newTestReporter(sender)

	// A fresh mount gets a fresh dedup set: same item, new view, new
	// impression.
	r.NewView().ImpressionOnce("n1", "t1", nil)
	r.NewView().ImpressionOnce("n1", "t1", nil)
	r.Wait()

	assert.Len(t, sender.Events(), 2)
}

func TestNonImpressionEventsNeverDedup(t *testing.T) {
	sender := &captureSender{}
	r := newTestReporter(sender)
	view := r.NewView()

	click := domain.Event{EventType: domain.EventClick, NewsletterID: "n1", TopicID: "t1"}
	view.Report(click)
	view.Report(click)
	view.Report(domain.Event{EventType: domain.EventFollow, NewsletterID: "n1", TopicID: "t1"})
	r.Wait()

	assert.Len(t, sender.Events(), 3)
}
