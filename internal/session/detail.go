package session

import (
	"context"
	"log/slog"

	"github.com/khj1212k/news-recommendation-service/internal/api"
	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

// DetailView drives one mounted newsletter detail view. Close must run on
// every exit path; the dwell event is computed at that moment, not on a
// timer.
type DetailView struct {
	backend Backend
	events  Telemetry
	logger  *slog.Logger

	newsletterID string
	state        State
	detail       *domain.NewsletterDetail
	errMsg       string
}

func NewDetailView(backend Backend, events Telemetry, logger *slog.Logger, newsletterID string) *DetailView {
	return &DetailView{
		backend:      backend,
		events:       events,
		logger:       logger.With("view", "detail", "newsletter_id", newsletterID),
		newsletterID: newsletterID,
	}
}

// Load fetches the newsletter, starts the dwell measurement and fires the
// detail impression.
func (v *DetailView) Load(ctx context.Context) error {
	v.state = StateLoading

	detail, err := v.backend.Newsletter(ctx, v.newsletterID)
	if err != nil {
		v.state = StateErrored
		v.errMsg = api.Message(err)
		return err
	}

	v.detail = detail
	v.state = StateLoaded

	v.events.DwellBegin()
	v.events.DwellTopic(detail.TopicID)
	v.events.ImpressionOnce(v.newsletterID, detail.TopicID, nil)
	return nil
}

// Close ends the view's visible lifetime. Calling it on a view that never
// reached loaded, or calling it twice, is safe: at most one dwell event is
// emitted per mount.
func (v *DetailView) Close() {
	v.events.DwellEnd(v.newsletterID)
}

// SourceClick reports a click-through to one of the cited source articles.
func (v *DetailView) SourceClick(sourceID string) {
	if v.detail == nil {
		return
	}
	v.events.Report(domain.Event{
		EventType:    domain.EventClick,
		NewsletterID: v.detail.ID,
		TopicID:      v.detail.TopicID,
		Context:      map[string]any{"source_id": sourceID},
	})
}

// Feedback emits a follow, save or hide signal for this newsletter's topic.
// These are never deduplicated; the user may press the buttons repeatedly.
func (v *DetailView) Feedback(eventType string) {
	if v.detail == nil {
		return
	}
	v.events.Report(domain.Event{
		EventType:    eventType,
		NewsletterID: v.detail.ID,
		TopicID:      v.detail.TopicID,
	})
}

func (v *DetailView) State() State {
	return v.state
}

func (v *DetailView) Detail() *domain.NewsletterDetail {
	return v.detail
}

func (v *DetailView) ErrorMessage() string {
	return v.errMsg
}
