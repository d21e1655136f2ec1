package domain

// FeedItem is one entry of the personalized feed. Identity key is
// NewsletterID; items are immutable once received.
type FeedItem struct {
	NewsletterID    string  `json:"newsletter_id"`
	TopicID         string  `json:"topic_id"`
	Title           *string `json:"title"`
	Category        *string `json:"category"`
	NewsletterText  string  `json:"newsletter_text"`
	CreatedAt       string  `json:"created_at"`
	PopularityCount int     `json:"popularity_count"`
	Reason          string  `json:"reason"`
}

// PopularTopic is one entry of the popular-topics listing. Newsletter
// fields are filled from the topic's latest newsletter when one exists.
type PopularTopic struct {
	TopicID         string  `json:"topic_id"`
	Title           *string `json:"title"`
	Category        *string `json:"category"`
	PopularityCount int     `json:"popularity_count"`
	NewsletterID    *string `json:"newsletter_id"`
	NewsletterText  *string `json:"newsletter_text"`
	CreatedAt       *string `json:"created_at"`
}
