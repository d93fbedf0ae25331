package postgres

import (
	eventDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/event"
	"github.com/tvintergoller/keep-informed/internal/event"
	"gorm.io/gorm"
)

// EventRepository implements the event.Repository interface using GORM
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) event.Repository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(evt *eventDatamodel.Event) error {
	return r.db.Create(evt).Error
}

func (r *EventRepository) GetAll(skip, limit int) ([]*eventDatamodel.Event, error) {
	var events []*eventDatamodel.Event
	err := r.db.Order("start_date ASC").
		Offset(skip).
		Limit(limit).
		Find(&events).Error
	return events, err
}
