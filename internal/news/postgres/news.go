package postgres

import (
	newsDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/news"
	"github.com/tvintergoller/keep-informed/internal/news"
	"gorm.io/gorm"
)

// NewsRepository implements the news.Repository interface using GORM
type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) news.Repository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(item *newsDatamodel.News) error {
	return r.db.Create(item).Error
}

func (r *NewsRepository) GetAllNewestFirst() ([]*newsDatamodel.News, error) {
	var items []*newsDatamodel.News
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *NewsRepository) GetByID(id int64) (*newsDatamodel.News, error) {
	var item newsDatamodel.News
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *NewsRepository) Delete(id int64) error {
	return r.db.Delete(&newsDatamodel.News{}, id).Error
}
