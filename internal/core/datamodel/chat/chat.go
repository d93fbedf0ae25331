package chat

import "time"

type ChatMessage struct {
	ID         int64     `gorm:"primaryKey"`
	Text       string    `gorm:"column:text;not null"`
	SenderID   int64     `gorm:"column:sender_id;not null"`
	ReceiverID int64     `gorm:"column:receiver_id;not null"`
	Timestamp  time.Time `gorm:"column:timestamp;default:now()"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
