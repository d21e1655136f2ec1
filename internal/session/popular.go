package session

import (
	"context"
	"log/slog"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

// CategoryAll is the filter value meaning "no category filter".
const CategoryAll = "전체"

// Categories the popular view offers, in display order.
var Categories = []string{CategoryAll, "정치", "경제", "사회", "세계", "IT/과학", "문화", "스포츠"}

// PopularView is a stateless browse surface: it refetches on every filter
// change and emits no telemetry. Only content the user resolves through the
// feed is instrumented.
type PopularView struct {
	backend Backend
	logger  *slog.Logger
}

func NewPopularView(backend Backend, logger *slog.Logger) *PopularView {
	return &PopularView{
		backend: backend,
		logger:  logger.With("view", "popular"),
	}
}

// Load lists popular topics for category. CategoryAll and "" both mean all
// categories: the request then carries no category parameter.
func (v *PopularView) Load(ctx context.Context, category string) ([]domain.PopularTopic, error) {
	if category == CategoryAll {
		category = ""
	}
	return v.backend.PopularTopics(ctx, category)
}
