package employee

import (
	employeeDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/employee"
)

type Employee struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Position     *string `json:"position,omitempty"`
	DepartmentID *int64  `json:"department_id,omitempty"`
}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:           e.ID,
		Name:         e.Name,
		Position:     e.Position,
		DepartmentID: e.DepartmentID,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:           e.ID,
		Name:         e.Name,
		Position:     e.Position,
		DepartmentID: e.DepartmentID,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
