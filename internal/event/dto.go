package event

import "time"

type CreateEventDTO struct {
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	ResponsibleID int64     `json:"responsible_id"`
}

// CreateEventResponse echoes only the id and title of the new record.
type CreateEventResponse struct {
	Status string           `json:"status"`
	Data   CreatedEventData `json:"data"`
}

type CreatedEventData struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type ListEventsResponse struct {
	Status string   `json:"status"`
	Data   []*Event `json:"data"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateEventDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "title is required"}
	}
	if d.StartDate.IsZero() {
		return ValidationError{Msg: "start_date is required"}
	}
	if d.EndDate.IsZero() {
		return ValidationError{Msg: "end_date is required"}
	}
	if d.ResponsibleID == 0 {
		return ValidationError{Msg: "responsible_id is required"}
	}
	return nil
}
