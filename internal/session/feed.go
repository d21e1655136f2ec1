package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/khj1212k/news-recommendation-service/internal/api"
	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

// State of a view's load sequence.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

const (
	signInRequiredMessage = "로그인이 필요합니다."
	pageFeed              = "feed"
)

// ErrNotAuthenticated means no credential was stored; the feed request is
// never issued in that case.
var ErrNotAuthenticated = errors.New("not authenticated")

// FeedView drives one mounted feed view: fetch the personalized feed, then
// emit impressions for the shown items in display order. A view instance is
// owned by a single goroutine and must not be shared.
type FeedView struct {
	backend Backend
	tokens  TokenStore
	events  Telemetry
	logger  *slog.Logger

	state  State
	items  []domain.FeedItem
	errMsg string
}

func NewFeedView(backend Backend, tokens TokenStore, events Telemetry, logger *slog.Logger) *FeedView {
	return &FeedView{
		backend: backend,
		tokens:  tokens,
		events:  events,
		logger:  logger.With("view", pageFeed),
	}
}

// Load fetches the feed. On success every item gets its impression, tagged
// with the 1-based rank position. On failure no impressions are sent and
// ErrorMessage carries the display string.
func (v *FeedView) Load(ctx context.Context) error {
	v.state = StateLoading

	token, err := v.tokens.Get(ctx)
	if err != nil {
		v.logger.Warn("token read failed", "error", err)
	}
	if token == "" {
		v.state = StateErrored
		v.errMsg = signInRequiredMessage
		return ErrNotAuthenticated
	}

	items, err := v.backend.Feed(ctx)
	if err != nil {
		v.state = StateErrored
		v.errMsg = api.Message(err)
		return err
	}

	v.items = items
	v.state = StateLoaded
	v.emitImpressions()
	return nil
}

// Rendered reports that the UI displayed the current items again. Items
// already impressed on this mount stay impressed.
func (v *FeedView) Rendered() {
	if v.state == StateLoaded {
		v.emitImpressions()
	}
}

func (v *FeedView) emitImpressions() {
	for i, item := range v.items {
		v.events.ImpressionOnce(item.NewsletterID, item.TopicID, map[string]any{
			"page":          pageFeed,
			"rank_position": i + 1,
		})
	}
}

// Click reports that the user followed the item at the 1-based rank. It
// returns immediately; navigation never waits on telemetry.
func (v *FeedView) Click(item domain.FeedItem, rank int) {
	v.events.Report(domain.Event{
		EventType:    domain.EventClick,
		NewsletterID: item.NewsletterID,
		TopicID:      item.TopicID,
		Context: map[string]any{
			"page":          pageFeed,
			"rank_position": rank,
		},
	})
}

func (v *FeedView) State() State {
	return v.state
}

func (v *FeedView) Items() []domain.FeedItem {
	return v.items
}

func (v *FeedView) ErrorMessage() string {
	return v.errMsg
}
