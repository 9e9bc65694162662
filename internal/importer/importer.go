package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"product-catalog/internal/domain"
)

// ProductWriter is the slice of the product store the importer needs.
type ProductWriter interface {
	CreateBatch(ctx context.Context, items []domain.NewProduct) ([]domain.Product, error)
}

// JSONImporter reads a JSON catalog file (an array of product entries) and
// inserts it through the all-or-nothing batch create.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

type jsonEntry struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

// Run parses and validates every entry before any write, then inserts the
// whole catalog in one batch. It returns the number of created products.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var entries []jsonEntry
	dec := json.NewDecoder(i.reader)
	if err := dec.Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}
	if len(entries) == 0 {
		return 0, errors.New("catalog is empty")
	}

	items := make([]domain.NewProduct, 0, len(entries))
	for idx, e := range entries {
		item, err := e.validate()
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", idx, err)
		}
		items = append(items, item)
	}

	created, err := i.productRepo.CreateBatch(ctx, items)
	if err != nil {
		return 0, err
	}
	return len(created), nil
}

func (e jsonEntry) validate() (domain.NewProduct, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return domain.NewProduct{}, errors.New("name cannot be empty")
	}
	if e.Price <= 0 {
		return domain.NewProduct{}, errors.New("price must be positive")
	}
	if strings.TrimSpace(e.Category) == "" {
		return domain.NewProduct{}, errors.New("category cannot be empty")
	}
	return domain.NewProduct{
		Name:        name,
		Price:       e.Price,
		Category:    e.Category,
		Description: e.Description,
	}, nil
}
