package domain

// Event types accepted by the events endpoint.
const (
	EventImpression = "impression"
	EventClick      = "click"
	EventDwell      = "dwell"
	EventFollow     = "follow"
	EventSave       = "save"
	EventHide       = "hide"
)

// Event is a behavioral signal sent to the backend. Events are write-only;
// the client never reads them back. Value carries dwell seconds for dwell
// events and is omitted otherwise.
type Event struct {
	EventType    string         `json:"event_type"`
	NewsletterID string         `json:"newsletter_id,omitempty"`
	TopicID      string         `json:"topic_id,omitempty"`
	Value        *float64       `json:"value,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
}
