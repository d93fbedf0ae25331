package task

import "time"

type CreateTaskDTO struct {
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
	Priority    *string   `json:"priority,omitempty"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateTaskDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "title is required"}
	}
	if d.DueDate.IsZero() {
		return ValidationError{Msg: "due_date is required"}
	}
	return nil
}
