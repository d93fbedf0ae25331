package chat

import (
	"time"

	chatDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/chat"
)

type Message struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Timestamp  time.Time `json:"timestamp"`
}

func ToDataModel(m *Message) *chatDatamodel.ChatMessage {
	return &chatDatamodel.ChatMessage{
		ID:         m.ID,
		Text:       m.Text,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Timestamp:  m.Timestamp,
	}
}

func FromDataModel(m *chatDatamodel.ChatMessage) *Message {
	return &Message{
		ID:         m.ID,
		Text:       m.Text,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Timestamp:  m.Timestamp,
	}
}

func FromDataModelSlice(messages []*chatDatamodel.ChatMessage) []*Message {
	result := make([]*Message, len(messages))
	for i, m := range messages {
		result[i] = FromDataModel(m)
	}
	return result
}
