package activity

import "time"

type ActivityLog struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Action    string    `gorm:"column:action;not null"`
	Timestamp time.Time `gorm:"column:timestamp;default:now()"`
	Details   *string   `gorm:"column:details"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
