package activity

import (
	"log/slog"
	"time"

	"github.com/tvintergoller/keep-informed/internal/auth"
	activityDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/activity"
)

// Repository defines the data access methods for the activity log
type Repository interface {
	Create(entry *activityDatamodel.ActivityLog) error
	GetInRange(start, end time.Time) ([]*activityDatamodel.ActivityLog, error)
}

type Service struct {
	repo     Repository
	identity auth.IdentityResolver
	logger   *slog.Logger
}

func NewService(repo Repository, identity auth.IdentityResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		identity: identity,
		logger:   logger,
	}
}

// LogActivity records an action for the resolved user. This is the one write
// path that checks the caller-supplied id against the user table: an unknown
// id fails with the resolver's not-found error before anything is stored.
func (s *Service) LogActivity(userID int64, dto LogActivityDTO) (*LogEntry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.identity.Resolve(userID)
	if err != nil {
		return nil, err
	}

	record := &activityDatamodel.ActivityLog{
		UserID:    user.ID,
		Action:    dto.Action,
		Timestamp: time.Now(),
		Details:   dto.Details,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to log activity", "error", err, "user_id", user.ID)
		return nil, err
	}

	s.logger.Info("activity logged", "user_id", user.ID, "action", dto.Action)

	return FromDataModel(record), nil
}

// GenerateReport groups in-range log rows by user id, keeping stored order
// within each user. The range is inclusive on both ends.
func (s *Service) GenerateReport(start, end time.Time) (Report, error) {
	records, err := s.repo.GetInRange(start, end)
	if err != nil {
		s.logger.Error("failed to generate activity report", "error", err)
		return nil, err
	}

	report := make(Report)
	for _, record := range records {
		report[record.UserID] = append(report[record.UserID], ReportEntry{
			Action:    record.Action,
			Timestamp: record.Timestamp,
			Details:   record.Details,
		})
	}

	return report, nil
}
