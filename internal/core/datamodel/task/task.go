package task

import "time"

type Task struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	Description *string   `gorm:"column:description"`
	DueDate     time.Time `gorm:"column:due_date;not null"`
	Priority    *string   `gorm:"column:priority"`
	Status      string    `gorm:"column:status;default:new"`
	AssignedTo  int64     `gorm:"column:assigned_to;not null"`
}

func (Task) TableName() string {
	return "tasks"
}
