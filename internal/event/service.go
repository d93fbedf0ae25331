package event

import (
	"log/slog"

	eventDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/event"
)

// Repository defines the data access methods for the event calendar
type Repository interface {
	Create(event *eventDatamodel.Event) error
	GetAll(skip, limit int) ([]*eventDatamodel.Event, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateEvent stores an event. ResponsibleID is kept as the bare id the
// caller sent; no user lookup happens here.
func (s *Service) CreateEvent(dto CreateEventDTO) (*Event, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &eventDatamodel.Event{
		Title:         dto.Title,
		Description:   dto.Description,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
		ResponsibleID: dto.ResponsibleID,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create event", "error", err)
		return nil, err
	}

	s.logger.Info("event created", "event_id", record.ID, "responsible_id", record.ResponsibleID)

	return FromDataModel(record), nil
}

func (s *Service) ListEvents(skip, limit int) ([]*Event, error) {
	records, err := s.repo.GetAll(skip, limit)
	if err != nil {
		s.logger.Error("failed to list events", "error", err)
		return nil, err
	}

	return FromDataModelSlice(records), nil
}
