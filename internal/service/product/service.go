package product

import (
	"context"

	"product-catalog/internal/domain"
	productrepo "product-catalog/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListQuery carries boundary-validated listing parameters. Page is 1-based
// and at least 1; Limit is between 1 and 100.
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   productrepo.SortKey
	Order    productrepo.SortOrder
}

// Page is one page of the filtered catalog together with its pagination
// metadata. Total counts the filtered set before pagination.
type Page struct {
	Items      []domain.Product
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// List fetches one page. A page past the end of the filtered set yields an
// empty Items, not an error.
func (s *Service) List(ctx context.Context, q ListQuery) (*Page, error) {
	items, total, err := s.repo.List(ctx, productrepo.ListParams{
		Search:   q.Search,
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		SortBy:   q.SortBy,
		Order:    q.Order,
		Offset:   (q.Page - 1) * q.Limit,
		Limit:    q.Limit,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}

	return &Page{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.NewProduct) (*domain.Product, error) {
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, upd domain.ProductUpdate) (*domain.Product, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// BulkCreate inserts all items or none of them; the store rolls the batch
// back on any failure.
func (s *Service) BulkCreate(ctx context.Context, items []domain.NewProduct) ([]domain.Product, error) {
	return s.repo.CreateBatch(ctx, items)
}
