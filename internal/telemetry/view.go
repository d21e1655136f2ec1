package telemetry

import (
	"sync"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

// View owns the impression dedup set and the dwell tracker for one mounted
// view. It is exclusively owned by its view instance and never shared.
type View struct {
	reporter *Reporter

	mu    sync.Mutex
	seen  map[string]struct{}
	dwell *Dwell
}

// ImpressionOnce emits an impression for newsletterID unless this view
// already did. Only impressions deduplicate; every other event type fires
// on each user action.
func (v *View) ImpressionOnce(newsletterID, topicID string, context map[string]any) {
	v.mu.Lock()
	if _, sent := v.seen[newsletterID]; sent {
		v.mu.Unlock()
		return
	}
	v.seen[newsletterID] = struct{}{}
	v.mu.Unlock()

	v.reporter.Report(domain.Event{
		EventType:    domain.EventImpression,
		NewsletterID: newsletterID,
		TopicID:      topicID,
		Context:      context,
	})
}

// Report forwards a non-impression event unchanged.
func (v *View) Report(event domain.Event) {
	v.reporter.Report(event)
}

// DwellBegin starts this view's dwell measurement. Later calls are no-ops;
// a view has one visible lifetime.
func (v *View) DwellBegin() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dwell == nil {
		v.dwell = v.reporter.BeginDwell()
	}
}

// DwellTopic records the topic as it becomes known after load.
func (v *View) DwellTopic(topicID string) {
	v.mu.Lock()
	d := v.dwell
	v.mu.Unlock()
	if d != nil {
		d.SetTopic(topicID)
	}
}

// DwellEnd emits the dwell event if DwellBegin was called. Safe to call on
// every teardown path; only the first call emits.
func (v *View) DwellEnd(newsletterID string) {
	v.mu.Lock()
	d := v.dwell
	v.mu.Unlock()
	if d != nil {
		d.End(newsletterID)
	}
}
