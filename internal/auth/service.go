package auth

import (
	"log/slog"

	"github.com/tvintergoller/keep-informed/internal"
	userDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/user"
)

// Repository defines the data access methods for user records. GetByEmail and
// GetByID return (nil, nil) when no row matches.
type Repository interface {
	Create(user *userDatamodel.User) error
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	GetAll() ([]*userDatamodel.User, error)
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

// Register creates a user with a freshly derived credential. Fails with
// ErrDuplicateEmail when the email is already taken.
func (s *Service) Register(dto RegisterDTO) (*RegisterResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Error("register: email lookup failed", "error", err)
		return nil, internal.NewInternalError("failed to register user", err)
	}
	if existing != nil {
		return nil, internal.ErrDuplicateEmail
	}

	credential, err := HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("register: password hashing failed", "error", err)
		return nil, internal.NewInternalError("failed to register user", err)
	}

	role := dto.Role
	if role == "" {
		role = DefaultRole
	}

	record := &userDatamodel.User{
		Email:    dto.Email,
		Password: credential,
		Role:     role,
	}
	if err := s.repo.Create(record); err != nil {
		s.logger.Error("register: user insert failed", "error", err)
		return nil, internal.NewInternalError("failed to register user", err)
	}

	s.logger.Info("user registered", "user_id", record.ID, "role", role)

	return &RegisterResponse{Message: "user registered successfully"}, nil
}

// Login checks credentials and returns the user's id and role as plain data.
// Unknown email and wrong password collapse into one error so the caller
// cannot tell which occurred.
func (s *Service) Login(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Error("login: email lookup failed", "error", err)
		return nil, internal.NewInternalError("failed to log in", err)
	}

	if record == nil || !VerifyPassword(dto.Password, record.Password) {
		return nil, internal.ErrInvalidCredentials
	}

	return &LoginResponse{
		UserID: record.ID,
		Role:   record.Role,
	}, nil
}

// ResolveUser maps a caller-supplied id onto a user record, failing with
// ErrUserNotFound when no such user exists.
func (s *Service) ResolveUser(userID int64) (*User, error) {
	record, err := s.repo.GetByID(userID)
	if err != nil {
		s.logger.Error("resolve user: lookup failed", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to look up user", err)
	}
	if record == nil {
		return nil, internal.ErrUserNotFound
	}
	return FromDataModel(record), nil
}

// ListUsers returns every registered user's public fields, no pagination.
func (s *Service) ListUsers() ([]PublicUser, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("list users: query failed", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}

	users := make([]PublicUser, 0, len(records))
	for _, record := range records {
		users = append(users, FromDataModel(record).Public())
	}
	return users, nil
}
