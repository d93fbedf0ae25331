package employee

// Position is the only optional field; department membership is mandatory
// even though the column itself is nullable.
type CreateEmployeeDTO struct {
	Name         string  `json:"name"`
	Position     *string `json:"position,omitempty"`
	DepartmentID *int64  `json:"department_id"`
}

// CreateEmployeeResponse echoes only the id and name of the new record.
type CreateEmployeeResponse struct {
	Status string              `json:"status"`
	Data   CreatedEmployeeData `json:"data"`
}

type CreatedEmployeeData struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListEmployeesResponse struct {
	Status string      `json:"status"`
	Data   []*Employee `json:"data"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateEmployeeDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if d.DepartmentID == nil {
		return ValidationError{Msg: "department_id is required"}
	}
	return nil
}
