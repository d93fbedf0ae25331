package auth

import (
	userDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/user"
)

// DefaultRole is assigned at registration when no role is supplied. Roles are
// free-form text; nothing gates endpoints on them.
const DefaultRole = "user"

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // salt:hash credential, never serialized
	Role     string `json:"role"`
}

// PublicUser is the directory view of a user: credential omitted.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
	}
}
