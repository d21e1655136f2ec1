package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
	"github.com/khj1212k/news-recommendation-service/internal/metrics"
)

// Sender delivers one event to the backend.
type Sender interface {
	SendEvent(ctx context.Context, event domain.Event) error
}

type Config struct {
	EventsPerSecond float64
	Burst           int
	SendTimeout     time.Duration
}

// Reporter sends behavioral events without ever blocking or failing the
// caller. Telemetry must not get in the way of reading news: failures are
// logged and counted, nothing more.
type Reporter struct {
	sender  Sender
	logger  *slog.Logger
	limiter *rate.Limiter
	timeout time.Duration
	wg      sync.WaitGroup
	now     func() time.Time
}

func NewReporter(cfg Config, sender Sender, logger *slog.Logger) *Reporter {
	if cfg.EventsPerSecond == 0 {
		cfg.EventsPerSecond = 20
	}
	if cfg.Burst == 0 {
		cfg.Burst = 100
	}
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	return &Reporter{
		sender:  sender,
		logger:  logger.With("component", "telemetry"),
		limiter: rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), cfg.Burst),
		timeout: cfg.SendTimeout,
		now:     time.Now,
	}
}

// Report submits one event and returns immediately. The limiter uses Allow,
// not Wait: a flood drops events instead of stalling the caller.
func (r *Reporter) Report(event domain.Event) {
	if !r.limiter.Allow() {
		metrics.EventsDropped.Inc()
		r.logger.Debug("event dropped", "event_type", event.EventType)
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		// Detached from any view lifecycle: tearing a view down must not
		// cancel its in-flight events.
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.sender.SendEvent(ctx, event); err != nil {
			metrics.EventsFailed.Inc()
			r.logger.Debug("event send failed",
				"event_type", event.EventType,
				"newsletter_id", event.NewsletterID,
				"error", err,
			)
			return
		}
		metrics.EventsSent.Inc()
	}()
}

// Wait blocks until in-flight sends settle. Views never join on their
// events; this exists so a short-lived process can drain before exit.
func (r *Reporter) Wait() {
	r.wg.Wait()
}

// NewView creates the telemetry state for one mounted view. A fresh mount
// gets a fresh View, so navigating away and back re-sends impressions.
func (r *Reporter) NewView() *View {
	return &View{reporter: r, seen: make(map[string]struct{})}
}

// BeginDwell starts measuring a detail view's visible lifetime.
func (r *Reporter) BeginDwell() *Dwell {
	return &Dwell{reporter: r, start: r.now()}
}
