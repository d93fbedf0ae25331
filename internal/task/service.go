package task

import (
	"log/slog"

	"github.com/tvintergoller/keep-informed/internal"
	taskDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/task"
)

// Repository defines the data access methods for task lists. GetByIDAndAssignee
// returns (nil, nil) when no row matches both the id and the assignee.
type Repository interface {
	Create(task *taskDatamodel.Task) error
	GetByAssignee(userID int64) ([]*taskDatamodel.Task, error)
	GetByIDAndAssignee(id, userID int64) (*taskDatamodel.Task, error)
	Delete(id int64) error
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

// CreateTask stores a task assigned to the caller-supplied user id. Priority
// defaults to "medium" and status to "new" when omitted.
func (s *Service) CreateTask(dto CreateTaskDTO, assigneeID int64) (*Task, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	priority := dto.Priority
	if priority == nil {
		p := DefaultPriority
		priority = &p
	}

	record := &taskDatamodel.Task{
		Title:       dto.Title,
		Description: dto.Description,
		DueDate:     dto.DueDate,
		Priority:    priority,
		Status:      StatusNew,
		AssignedTo:  assigneeID,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create task", "error", err, "assignee_id", assigneeID)
		return nil, err
	}

	s.logger.Info("task created", "task_id", record.ID, "assignee_id", assigneeID)

	return FromDataModel(record), nil
}

func (s *Service) ListTasks(assigneeID int64) ([]*Task, error) {
	records, err := s.repo.GetByAssignee(assigneeID)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "assignee_id", assigneeID)
		return nil, err
	}

	return FromDataModelSlice(records), nil
}

// DeleteTask removes a task only when the caller-supplied id matches its
// assignee; missing and not-owned collapse into one error.
func (s *Service) DeleteTask(taskID, callerID int64) error {
	record, err := s.repo.GetByIDAndAssignee(taskID, callerID)
	if err != nil {
		s.logger.Error("failed to look up task", "error", err, "task_id", taskID)
		return err
	}

	if record == nil {
		return internal.ErrTaskNotFoundOrForbidden
	}

	if err := s.repo.Delete(taskID); err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", taskID)
		return err
	}

	s.logger.Info("task deleted", "task_id", taskID, "assignee_id", callerID)

	return nil
}
