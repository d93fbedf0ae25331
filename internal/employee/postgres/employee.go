package postgres

import (
	employeeDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/employee"
	"github.com/tvintergoller/keep-informed/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(emp *employeeDatamodel.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) GetAll(skip, limit int) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&employees).Error
	return employees, err
}
