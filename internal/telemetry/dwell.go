package telemetry

import (
	"math"
	"sync"
	"time"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

// Dwell measures the elapsed visible time of one detail view. End is driven
// by the view's teardown, never by a timer, and very short views still emit:
// there is deliberately no minimum floor.
type Dwell struct {
	reporter *Reporter
	start    time.Time

	mu      sync.Mutex
	topicID string
	once    sync.Once
}

// SetTopic records the topic once detail data has arrived. The latest value
// wins at End time.
func (d *Dwell) SetTopic(topicID string) {
	d.mu.Lock()
	d.topicID = topicID
	d.mu.Unlock()
}

// End emits the dwell event carrying the elapsed whole seconds. Only the
// first call emits; teardown paths may overlap. When the topic never became
// known it is omitted from the event rather than blocking emission.
func (d *Dwell) End(newsletterID string) {
	d.once.Do(func() {
		value := math.Round(d.reporter.now().Sub(d.start).Seconds())

		d.mu.Lock()
		topicID := d.topicID
		d.mu.Unlock()

		d.reporter.Report(domain.Event{
			EventType:    domain.EventDwell,
			NewsletterID: newsletterID,
			TopicID:      topicID,
			Value:        &value,
		})
	})
}
