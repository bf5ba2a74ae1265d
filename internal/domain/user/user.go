package user

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=mocks/mock_repository.go -package=mocks

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
