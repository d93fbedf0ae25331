package news

import "time"

// CreatedBy is a bare user id with no foreign key constraint; referential
// integrity is not enforced for news authors.
type News struct {
	ID        int64     `gorm:"primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	Content   string    `gorm:"column:content;not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	CreatedBy int64     `gorm:"column:created_by;not null"`
}

func (News) TableName() string {
	return "news"
}
