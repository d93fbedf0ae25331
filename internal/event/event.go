package event

import (
	"time"

	eventDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/event"
)

type Event struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	ResponsibleID int64     `json:"responsible_id"`
}

func ToDataModel(e *Event) *eventDatamodel.Event {
	return &eventDatamodel.Event{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		ResponsibleID: e.ResponsibleID,
	}
}

func FromDataModel(e *eventDatamodel.Event) *Event {
	return &Event{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		ResponsibleID: e.ResponsibleID,
	}
}

func FromDataModelSlice(events []*eventDatamodel.Event) []*Event {
	result := make([]*Event, len(events))
	for i, e := range events {
		result[i] = FromDataModel(e)
	}
	return result
}
