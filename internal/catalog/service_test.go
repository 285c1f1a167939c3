package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
)

type mockProductsRepository struct {
	FindAllFunc            func(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
	FindAvailableFunc      func(ctx context.Context, limit, offset int) ([]domain.Product, int64, error)
	SearchByNameFunc       func(ctx context.Context, name string, limit, offset int) ([]domain.Product, int64, error)
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Product, error)
	InsertFunc             func(ctx context.Context, p *domain.Product) (uint, error)
	UpdateFunc             func(ctx context.Context, p *domain.Product) error
	DeleteFunc             func(ctx context.Context, id uint) error
	HasOrderReferencesFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockProductsRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	return m.FindAllFunc(ctx, limit, offset)
}

func (m *mockProductsRepository) FindAvailable(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	return m.FindAvailableFunc(ctx, limit, offset)
}

func (m *mockProductsRepository) SearchByName(ctx context.Context, name string, limit, offset int) ([]domain.Product, int64, error) {
	return m.SearchByNameFunc(ctx, name, limit, offset)
}

func (m *mockProductsRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockProductsRepository) Insert(ctx context.Context, p *domain.Product) (uint, error) {
	return m.InsertFunc(ctx, p)
}

func (m *mockProductsRepository) Update(ctx context.Context, p *domain.Product) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockProductsRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockProductsRepository) HasOrderReferences(ctx context.Context, id uint) (bool, error) {
	return m.HasOrderReferencesFunc(ctx, id)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", 0, 0, 0, defaultPageSize},
		{"negative page", -3, 10, 0, 10},
		{"negative page size", 2, -1, 2, defaultPageSize},
		{"capped page size", 0, 500, 0, maxPageSize},
		{"passthrough", 3, 20, 3, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := normalizePage(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestList_PaginationMath(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockProductsRepository{
		FindAllFunc: func(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
			gotLimit, gotOffset = limit, offset
			return []domain.Product{{ID: 1, Name: "Sticker", Price: decimal.RequireFromString("29.90")}}, 25, nil
		},
	}
	svc := NewService(repo)

	page, err := svc.List(context.Background(), 2, 0)
	require.NoError(t, err)

	assert.Equal(t, defaultPageSize, gotLimit)
	assert.Equal(t, 2*defaultPageSize, gotOffset)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(25), page.TotalElements)
	// 25 elements at 12 per page
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Content, 1)
}

func TestList_EmptyResult(t *testing.T) {
	repo := &mockProductsRepository{
		FindAllFunc: func(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
			return nil, 0, nil
		},
	}
	svc := NewService(repo)

	page, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.NotNil(t, page.Content, "content must serialize as [] rather than null")
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, int64(0), page.TotalElements)
}

func TestDelete_RefusesReferencedProduct(t *testing.T) {
	repo := &mockProductsRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Sticker"}, nil
		},
		HasOrderReferencesFunc: func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			t.Fatal("referenced product must not be deleted")
			return nil
		},
	}
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 1)

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok, "expected ConflictError, got %v", err)
}

func TestDelete_UnknownProduct(t *testing.T) {
	repo := &mockProductsRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product not found")
		},
	}
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 99)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestDelete_UnreferencedProduct(t *testing.T) {
	deleted := false
	repo := &mockProductsRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Sticker"}, nil
		},
		HasOrderReferencesFunc: func(ctx context.Context, id uint) (bool, error) {
			return false, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.True(t, deleted)
}
