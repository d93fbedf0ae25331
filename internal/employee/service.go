package employee

import (
	"log/slog"

	employeeDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/employee"
)

// Repository defines the data access methods for the employee directory
type Repository interface {
	Create(employee *employeeDatamodel.Employee) error
	GetAll(skip, limit int) ([]*employeeDatamodel.Employee, error)
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

func (s *Service) CreateEmployee(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &employeeDatamodel.Employee{
		Name:         dto.Name,
		Position:     dto.Position,
		DepartmentID: dto.DepartmentID,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create employee", "error", err)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", record.ID)

	return FromDataModel(record), nil
}

func (s *Service) ListEmployees(skip, limit int) ([]*Employee, error) {
	records, err := s.repo.GetAll(skip, limit)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}

	return FromDataModelSlice(records), nil
}
