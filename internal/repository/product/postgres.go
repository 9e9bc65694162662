package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"product-catalog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, p domain.NewProduct) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, price, category, description)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`
	out := domain.Product{
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
	}
	err := r.pool.QueryRow(ctx, q, p.Name, p.Price, p.Category, p.Description).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%d name=%q", out.ID, out.Name)
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return p, nil
}

// Update applies only the supplied fields and bumps updated_at when at least
// one field is supplied. An empty update still checks existence but performs
// no write.
func (r *postgresRepo) Update(ctx context.Context, id int64, upd domain.ProductUpdate) (*domain.Product, error) {
	if upd.Empty() {
		return r.GetByID(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.Category != nil {
		set("category", *upd.Category)
	}
	if upd.DescriptionSet {
		set("description", upd.Description)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	q := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%d error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("product repo: updated id=%d", id)
	return p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return false, err
	}
	deleted := tag.RowsAffected() > 0
	if deleted {
		r.logger.Printf("product repo: deleted id=%d", id)
	}
	return deleted, nil
}

func (r *postgresRepo) List(ctx context.Context, params ListParams) ([]domain.Product, int, error) {
	lq, err := buildListQuery(params)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, lq.countSQL, lq.countArgs...).Scan(&total); err != nil {
		r.logger.Printf("product repo: list count error=%v", err)
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, lq.pageSQL, lq.pageArgs...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, 0, err
	}
	r.logger.Printf("product repo: list count=%d total=%d", len(result), total)
	return result, total, nil
}

func (r *postgresRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	const q = `
SELECT DISTINCT category
FROM products
WHERE category IS NOT NULL AND category <> ''
ORDER BY category
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: categories error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: categories rows error=%v", err)
		return nil, err
	}
	return result, nil
}

// CreateBatch inserts every item inside a single transaction. The deferred
// rollback is a no-op after a successful commit.
func (r *postgresRepo) CreateBatch(ctx context.Context, items []domain.NewProduct) ([]domain.Product, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Printf("product repo: batch begin error=%v", err)
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO products (name, price, category, description)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`
	created := make([]domain.Product, 0, len(items))
	for i, item := range items {
		out := domain.Product{
			Name:        item.Name,
			Price:       item.Price,
			Category:    item.Category,
			Description: item.Description,
		}
		if err := tx.QueryRow(ctx, q, item.Name, item.Price, item.Category, item.Description).Scan(&out.ID, &out.CreatedAt); err != nil {
			r.logger.Printf("product repo: batch insert item=%d error=%v", i, err)
			return nil, &domain.BulkCreateError{Index: i, Err: err}
		}
		created = append(created, out)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Printf("product repo: batch commit error=%v", err)
		return nil, &domain.BulkCreateError{Index: len(items) - 1, Err: err}
	}
	r.logger.Printf("product repo: batch created count=%d", len(created))
	return created, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
