package chat

type SendMessageDTO struct {
	Text       string `json:"text"`
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
}

type ConversationsResponse struct {
	ChatsWithUsers []int64 `json:"chats_with_users"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d SendMessageDTO) Validate() error {
	if d.Text == "" {
		return ValidationError{Msg: "text is required"}
	}
	if d.SenderID == 0 {
		return ValidationError{Msg: "sender_id is required"}
	}
	if d.ReceiverID == 0 {
		return ValidationError{Msg: "receiver_id is required"}
	}
	return nil
}
