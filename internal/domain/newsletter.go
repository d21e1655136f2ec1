package domain

// NewsletterDetail is the full newsletter fetched for a detail view,
// including the source articles and the sentences cited from them.
type NewsletterDetail struct {
	ID             string     `json:"id"`
	TopicID        string     `json:"topic_id"`
	Category       *string    `json:"category"`
	Title          *string    `json:"title"`
	NewsletterText string     `json:"newsletter_text"`
	CreatedAt      string     `json:"created_at"`
	Citations      []Citation `json:"citations"`
	Sources        []Source   `json:"sources"`
}

type Citation struct {
	SentenceIndex     int    `json:"sentence_index"`
	SourceArticleID   string `json:"source_article_id"`
	SourceExcerpt     string `json:"source_excerpt"`
	SourceOffsetStart *int   `json:"source_offset_start"`
	SourceOffsetEnd   *int   `json:"source_offset_end"`
}

type Source struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Title       *string `json:"title"`
	Publisher   *string `json:"publisher"`
	PublishedAt *string `json:"published_at"`
}
