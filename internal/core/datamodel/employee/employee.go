package employee

type Employee struct {
	ID           int64   `gorm:"primaryKey"`
	Name         string  `gorm:"column:name;not null"`
	Position     *string `gorm:"column:position"`
	DepartmentID *int64  `gorm:"column:department_id"`
}

func (Employee) TableName() string {
	return "employees"
}

type Department struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (Department) TableName() string {
	return "departments"
}
