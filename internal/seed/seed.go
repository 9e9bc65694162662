package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Price       float64
	Category    string
	Description string
}

// Apply inserts basic catalog data for manual testing. It is idempotent: a
// product is only inserted when no row with the same name exists yet.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Wireless Mouse",
			Price:       24.99,
			Category:    "electronics",
			Description: "Compact 2.4 GHz wireless mouse",
		},
		{
			Name:        "Mechanical Keyboard",
			Price:       89.99,
			Category:    "electronics",
			Description: "Tenkeyless board with brown switches",
		},
		{
			Name:        "Ceramic Mug",
			Price:       12.50,
			Category:    "kitchen",
			Description: "350 ml stoneware mug",
		},
		{
			Name:        "Cotton T-Shirt",
			Price:       19.99,
			Category:    "apparel",
			Description: "Plain crew-neck tee",
		},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("insert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, price, category, description)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Price, p.Category, p.Description)
	return err
}
