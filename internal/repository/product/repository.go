package product

import (
	"context"

	"product-catalog/internal/domain"
)

// SortKey names a sortable product column. Anything outside the declared set
// is rejected before a query is built.
type SortKey string

const (
	SortByID        SortKey = "id"
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByCategory  SortKey = "category"
	SortByCreatedAt SortKey = "created_at"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ListParams describes one listing: a conjunctive filter, a single-key sort,
// and an offset/limit window. Zero-value Search/Category and nil price bounds
// mean "no constraint".
type ListParams struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   SortKey
	Order    SortOrder
	Offset   int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, p domain.NewProduct) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, upd domain.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// List returns the requested page and the total count over the filtered
	// set before pagination is applied.
	List(ctx context.Context, params ListParams) ([]domain.Product, int, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	// CreateBatch inserts all items in one transaction, in input order. On
	// any failure nothing is committed and a *domain.BulkCreateError is
	// returned.
	CreateBatch(ctx context.Context, items []domain.NewProduct) ([]domain.Product, error)
}
