package auth_test

import (
	"errors"
	"log/slog"
	"os"

	"github.com/tvintergoller/keep-informed/internal"
	"github.com/tvintergoller/keep-informed/internal/auth"
	userDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements auth.Repository for testing
type MockRepository struct {
	users      map[int64]*userDatamodel.User
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		users:  make(map[int64]*userDatamodel.User),
		nextID: 1,
	}
}

func (m *MockRepository) Create(user *userDatamodel.User) error {
	if m.shouldFail {
		return m.failError
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *MockRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) GetByID(id int64) (*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *MockRepository) GetAll() ([]*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	result := make([]*userDatamodel.User, 0, len(m.users))
	for id := int64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockRepository
		service  *auth.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(mockRepo, logger)
	})

	Describe("Register", func() {
		It("should create a user with the default role", func() {
			resp, err := service.Register(auth.RegisterDTO{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Message).NotTo(BeEmpty())

			record, err := mockRepo.GetByEmail("a@x.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(record).NotTo(BeNil())
			Expect(record.Role).To(Equal("user"))
		})

		It("should store a verifiable credential, not the plain password", func() {
			_, err := service.Register(auth.RegisterDTO{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())

			record, _ := mockRepo.GetByEmail("a@x.com")
			Expect(record.Password).NotTo(Equal("secret"))
			Expect(auth.VerifyPassword("secret", record.Password)).To(BeTrue())
		})

		It("should honor an explicitly supplied role", func() {
			_, err := service.Register(auth.RegisterDTO{Email: "a@x.com", Password: "secret", Role: "admin"})
			Expect(err).NotTo(HaveOccurred())

			record, _ := mockRepo.GetByEmail("a@x.com")
			Expect(record.Role).To(Equal("admin"))
		})

		Context("when the email is already registered", func() {
			BeforeEach(func() {
				_, err := service.Register(auth.RegisterDTO{Email: "a@x.com", Password: "first"})
				Expect(err).NotTo(HaveOccurred())
			})

			It("should fail with the duplicate email error", func() {
				_, err := service.Register(auth.RegisterDTO{Email: "a@x.com", Password: "second"})
				Expect(err).To(Equal(internal.ErrDuplicateEmail))
			})
		})

		It("should reject missing fields", func() {
			_, err := service.Register(auth.RegisterDTO{Email: "", Password: "secret"})
			Expect(err).To(HaveOccurred())
			_, err = service.Register(auth.RegisterDTO{Email: "a@x.com", Password: ""})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			_, err := service.Register(auth.RegisterDTO{Email: "a@x.com", Password: "secret", Role: "admin"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the user id and role on valid credentials", func() {
			resp, err := service.Login(auth.LoginDTO{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.UserID).To(BeNumerically(">", 0))
			Expect(resp.Role).To(Equal("admin"))
		})

		It("should fail identically for unknown email and wrong password", func() {
			_, unknownErr := service.Login(auth.LoginDTO{Email: "nobody@x.com", Password: "secret"})
			_, wrongErr := service.Login(auth.LoginDTO{Email: "a@x.com", Password: "wrong"})

			Expect(unknownErr).To(Equal(internal.ErrInvalidCredentials))
			Expect(wrongErr).To(Equal(internal.ErrInvalidCredentials))
		})
	})

	Describe("ResolveUser", func() {
		It("should return the user for a known id", func() {
			_, err := service.Register(auth.RegisterDTO{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())

			user, err := service.ResolveUser(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("a@x.com"))
		})

		It("should fail with not-found for an unknown id", func() {
			_, err := service.ResolveUser(42)
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("ListUsers", func() {
		It("should return public fields for every user", func() {
			_, err := service.Register(auth.RegisterDTO{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Register(auth.RegisterDTO{Email: "b@x.com", Password: "secret", Role: "admin"})
			Expect(err).NotTo(HaveOccurred())

			users, err := service.ListUsers()
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
			Expect(users[0].Email).To(Equal("a@x.com"))
			Expect(users[1].Role).To(Equal("admin"))
		})

		It("should propagate repository failures", func() {
			mockRepo.SetShouldFail(true, errors.New("database error"))
			_, err := service.ListUsers()
			Expect(err).To(HaveOccurred())
		})
	})
})
