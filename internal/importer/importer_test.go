package importer

import (
	"context"
	"strings"
	"testing"

	"product-catalog/internal/domain"
)

type stubWriter struct {
	batches [][]domain.NewProduct
	err     error
}

func (s *stubWriter) CreateBatch(_ context.Context, items []domain.NewProduct) ([]domain.Product, error) {
	s.batches = append(s.batches, items)
	if s.err != nil {
		return nil, s.err
	}
	created := make([]domain.Product, len(items))
	for i, item := range items {
		created[i] = domain.Product{ID: int64(i + 1), Name: item.Name, Price: item.Price, Category: item.Category}
	}
	return created, nil
}

func TestJSONImporter_Run(t *testing.T) {
	catalog := `[
		{"name":" Mug ","price":12.5,"category":"kitchen","description":"stoneware"},
		{"name":"Mouse","price":24.99,"category":"electronics"}
	]`
	writer := &stubWriter{}
	imp := NewJSONImporter(strings.NewReader(catalog), writer)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 imported, got %d", count)
	}
	if len(writer.batches) != 1 {
		t.Fatalf("expected a single batch, got %d", len(writer.batches))
	}
	if writer.batches[0][0].Name != "Mug" {
		t.Fatalf("expected trimmed name, got %q", writer.batches[0][0].Name)
	}
}

func TestJSONImporter_RejectsInvalidEntryBeforeWrite(t *testing.T) {
	catalog := `[
		{"name":"Mug","price":12.5,"category":"kitchen"},
		{"name":"Broken","price":0,"category":"kitchen"}
	]`
	writer := &stubWriter{}
	imp := NewJSONImporter(strings.NewReader(catalog), writer)

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(writer.batches) != 0 {
		t.Fatalf("invalid catalog must not reach the store")
	}
}

func TestJSONImporter_EmptyAndMalformed(t *testing.T) {
	if _, err := NewJSONImporter(strings.NewReader("[]"), &stubWriter{}).Run(context.Background()); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
	if _, err := NewJSONImporter(strings.NewReader("{"), &stubWriter{}).Run(context.Background()); err == nil {
		t.Fatalf("expected error for malformed catalog")
	}
}
