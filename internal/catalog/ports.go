package catalog

import (
	"context"

	"github.com/geovannedomonte/vaiart/internal/domain"
)

type Service interface {
	List(ctx context.Context, page, pageSize int) (*ProductPage, error)
	ListAvailable(ctx context.Context, page, pageSize int) (*ProductPage, error)
	Search(ctx context.Context, name string, page, pageSize int) (*ProductPage, error)
	GetByID(ctx context.Context, id uint) (*ProductDTO, error)
	Create(ctx context.Context, req ProductRequest) (*ProductDTO, error)
	Update(ctx context.Context, id uint, req ProductRequest) (*ProductDTO, error)
	Delete(ctx context.Context, id uint) error
}

type Repository interface {
	FindAll(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
	FindAvailable(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
	SearchByName(ctx context.Context, name string, limit, offset int) ([]domain.Product, int64, error)
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (uint, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uint) error
	HasOrderReferences(ctx context.Context, id uint) (bool, error)
}
