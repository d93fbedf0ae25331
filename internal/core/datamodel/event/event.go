package event

import "time"

type Event struct {
	ID            int64     `gorm:"primaryKey"`
	Title         string    `gorm:"column:title;not null"`
	Description   *string   `gorm:"column:description"`
	StartDate     time.Time `gorm:"column:start_date;not null"`
	EndDate       time.Time `gorm:"column:end_date;not null"`
	ResponsibleID int64     `gorm:"column:responsible_id;not null"`
}

func (Event) TableName() string {
	return "events"
}
