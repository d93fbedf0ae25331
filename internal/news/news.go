package news

import (
	"time"

	newsDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/news"
)

type News struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy int64     `json:"created_by"`
}

func ToDataModel(n *News) *newsDatamodel.News {
	return &newsDatamodel.News{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		CreatedBy: n.CreatedBy,
	}
}

func FromDataModel(n *newsDatamodel.News) *News {
	return &News{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		CreatedBy: n.CreatedBy,
	}
}

func FromDataModelSlice(items []*newsDatamodel.News) []*News {
	result := make([]*News, len(items))
	for i, n := range items {
		result[i] = FromDataModel(n)
	}
	return result
}
