package employee_test

import (
	"errors"
	"log/slog"
	"os"

	employeeDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/employee"
	"github.com/tvintergoller/keep-informed/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements employee.Repository for testing
type MockRepository struct {
	employees  []*employeeDatamodel.Employee
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{nextID: 1}
}

func (m *MockRepository) Create(e *employeeDatamodel.Employee) error {
	if m.shouldFail {
		return m.failError
	}
	e.ID = m.nextID
	m.nextID++
	m.employees = append(m.employees, e)
	return nil
}

func (m *MockRepository) GetAll(skip, limit int) ([]*employeeDatamodel.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	if skip >= len(m.employees) {
		return nil, nil
	}
	end := skip + limit
	if end > len(m.employees) {
		end = len(m.employees)
	}
	return m.employees[skip:end], nil
}

var _ = Describe("Employee Service", func() {
	var (
		mockRepo *MockRepository
		service  *employee.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, logger)
	})

	Describe("CreateEmployee", func() {
		var deptID int64

		BeforeEach(func() {
			deptID = 3
		})

		It("should store an employee without a position", func() {
			created, err := service.CreateEmployee(employee.CreateEmployeeDTO{Name: "Anna", DepartmentID: &deptID})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Position).To(BeNil())
			Expect(*created.DepartmentID).To(Equal(int64(3)))
		})

		It("should keep the position when supplied", func() {
			position := "engineer"
			created, err := service.CreateEmployee(employee.CreateEmployeeDTO{
				Name:         "Anna",
				Position:     &position,
				DepartmentID: &deptID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(*created.Position).To(Equal("engineer"))
		})

		It("should reject a missing name", func() {
			_, err := service.CreateEmployee(employee.CreateEmployeeDTO{DepartmentID: &deptID})
			Expect(err).To(HaveOccurred())
		})

		It("should reject a missing department", func() {
			_, err := service.CreateEmployee(employee.CreateEmployeeDTO{Name: "Anna"})
			Expect(err).To(HaveOccurred())
			Expect(mockRepo.employees).To(BeEmpty())
		})
	})

	Describe("ListEmployees", func() {
		BeforeEach(func() {
			deptID := int64(1)
			for _, name := range []string{"a", "b", "c"} {
				_, err := service.CreateEmployee(employee.CreateEmployeeDTO{Name: name, DepartmentID: &deptID})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should apply skip and limit", func() {
			page, err := service.ListEmployees(1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(1))
			Expect(page[0].Name).To(Equal("b"))
		})

		It("should propagate repository failures", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("database error")
			_, err := service.ListEmployees(0, 10)
			Expect(err).To(HaveOccurred())
		})
	})
})
