package catalog

import (
	"context"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &catalogService{repo: repo}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func buildPage(products []domain.Product, page, pageSize int, total int64) *ProductPage {
	content := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		content = append(content, toProductDTO(p))
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &ProductPage{
		Content:       content,
		Page:          page,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

func (s *catalogService) List(ctx context.Context, page, pageSize int) (*ProductPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	products, total, err := s.repo.FindAll(ctx, pageSize, page*pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(products, page, pageSize, total), nil
}

func (s *catalogService) ListAvailable(ctx context.Context, page, pageSize int) (*ProductPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	products, total, err := s.repo.FindAvailable(ctx, pageSize, page*pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(products, page, pageSize, total), nil
}

func (s *catalogService) Search(ctx context.Context, name string, page, pageSize int) (*ProductPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	products, total, err := s.repo.SearchByName(ctx, name, pageSize, page*pageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(products, page, pageSize, total), nil
}

func (s *catalogService) GetByID(ctx context.Context, id uint) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toProductDTO(*product)
	return &dto, nil
}

func (s *catalogService) Create(ctx context.Context, req ProductRequest) (*ProductDTO, error) {
	product := domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}

	id, err := s.repo.Insert(ctx, &product)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toProductDTO(*created)
	return &dto, nil
}

func (s *catalogService) Update(ctx context.Context, id uint, req ProductRequest) (*ProductDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.ImageURL = req.ImageURL
	existing.Available = req.Available

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	dto := toProductDTO(*existing)
	return &dto, nil
}

// Delete refuses to remove a product that historical order lines still
// reference. Lines carry their own price snapshot, but the foreign key stays
// honest this way.
func (s *catalogService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.repo.HasOrderReferences(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperrors.NewConflictError("product is referenced by existing orders")
	}

	return s.repo.Delete(ctx, id)
}
