package domain

import (
	"context"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleHR    = "hr"
)

type User struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	Role         string `json:"role" gorm:"size:16;not null"`
	Name         string `json:"name" gorm:"size:255"`
}

// UserProfile is the public view of a user returned by the auth endpoints.
type UserProfile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

type LoginResult struct {
	Success bool        `json:"success"`
	User    UserProfile `json:"user"`
	Token   string      `json:"token"`
}

type UserRepository interface {
	CreateBatch(ctx context.Context, users []User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetCurrentUser(ctx context.Context, id int64) (*UserProfile, error)
}
