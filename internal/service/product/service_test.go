package product

import (
	"context"
	"testing"

	"product-catalog/internal/domain"
	productrepo "product-catalog/internal/repository/product"
)

type stubRepo struct {
	productrepo.Repository

	items      []domain.Product
	total      int
	lastParams productrepo.ListParams
	categories []string
	err        error
}

func (s *stubRepo) List(_ context.Context, params productrepo.ListParams) ([]domain.Product, int, error) {
	s.lastParams = params
	return s.items, s.total, s.err
}

func (s *stubRepo) DistinctCategories(_ context.Context) ([]string, error) {
	return s.categories, s.err
}

func TestList_ComputesOffsetFromPage(t *testing.T) {
	repo := &stubRepo{total: 25}
	svc := New(repo)

	page, err := svc.List(context.Background(), ListQuery{Page: 3, Limit: 10, SortBy: productrepo.SortByID, Order: productrepo.OrderAsc})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastParams.Offset != 20 || repo.lastParams.Limit != 10 {
		t.Fatalf("unexpected window offset=%d limit=%d", repo.lastParams.Offset, repo.lastParams.Limit)
	}
	if page.Page != 3 || page.Limit != 10 {
		t.Fatalf("unexpected page meta %+v", page)
	}
}

func TestList_TotalPagesIsCeiling(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{25, 10, 3},
		{11, 10, 2},
		{5, 100, 1},
	}
	for _, tc := range cases {
		repo := &stubRepo{total: tc.total}
		page, err := New(repo).List(context.Background(), ListQuery{Page: 1, Limit: tc.limit})
		if err != nil {
			t.Fatalf("List total=%d limit=%d: %v", tc.total, tc.limit, err)
		}
		if page.TotalPages != tc.want {
			t.Fatalf("total=%d limit=%d: expected totalPages=%d, got %d", tc.total, tc.limit, tc.want, page.TotalPages)
		}
	}
}

func TestList_EmptyStoreShape(t *testing.T) {
	page, err := New(&stubRepo{}).List(context.Background(), ListQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("expected non-nil empty items, got %#v", page.Items)
	}
	if page.Total != 0 || page.TotalPages != 0 {
		t.Fatalf("unexpected meta %+v", page)
	}
}

func TestCategories_NeverNil(t *testing.T) {
	categories, err := New(&stubRepo{}).Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if categories == nil || len(categories) != 0 {
		t.Fatalf("expected non-nil empty slice, got %#v", categories)
	}
}
