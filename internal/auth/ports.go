package auth

import (
	"context"

	"github.com/geovannedomonte/vaiart/internal/domain"
)

type Service interface {
	Register(ctx context.Context, email, password string) (*UserDTO, error)
	Login(ctx context.Context, email, password string) (*TokenDTO, error)
	ParseToken(token string) (*Claims, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, u *domain.User) (uint, error)
}
