package session

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, email, password string) (string, error)
	Feed(ctx context.Context) ([]domain.FeedItem, error)
	Newsletter(ctx context.Context, id string) (*domain.NewsletterDetail, error)
	PopularTopics(ctx context.Context, category string) ([]domain.PopularTopic, error)
	UpdatePreferences(ctx context.Context, prefs domain.Preferences) error
}

// Telemetry is the per-view instrumentation surface. Calls return
// immediately; delivery happens in the background and is never awaited.
type Telemetry interface {
	ImpressionOnce(newsletterID, topicID string, context map[string]any)
	Report(event domain.Event)
	DwellBegin()
	DwellTopic(topicID string)
	DwellEnd(newsletterID string)
}

type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
