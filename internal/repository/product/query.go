package product

import (
	"fmt"
	"strings"
)

const productColumns = `id, name, price, category, description, created_at, updated_at`

// sortColumns is the full set of sortable columns. Sort keys are mapped
// explicitly; nothing else ever reaches ORDER BY.
var sortColumns = map[SortKey]string{
	SortByID:        "id",
	SortByName:      "name",
	SortByPrice:     "price",
	SortByCategory:  "category",
	SortByCreatedAt: "created_at",
}

type listQuery struct {
	countSQL  string
	countArgs []any
	pageSQL   string
	pageArgs  []any
}

// buildListQuery translates ListParams into a count query over the filtered
// set and a paginated page query. Filters are ANDed; search matches name or
// description as a case-sensitive substring (Postgres default collation), and
// a NULL description never matches.
func buildListQuery(p ListParams) (listQuery, error) {
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = SortByID
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return listQuery{}, fmt.Errorf("invalid sort key %q", p.SortBy)
	}

	direction := "ASC"
	switch p.Order {
	case "", OrderAsc:
	case OrderDesc:
		direction = "DESC"
	default:
		return listQuery{}, fmt.Errorf("invalid sort order %q", p.Order)
	}

	var (
		conds []string
		args  []any
	)
	if p.Search != "" {
		args = append(args, p.Search)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name LIKE '%%' || $%d || '%%' OR description LIKE '%%' || $%d || '%%')", n, n))
	}
	if p.Category != "" {
		args = append(args, p.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if p.MinPrice != nil {
		args = append(args, *p.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if p.MaxPrice != nil {
		args = append(args, *p.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	pageArgs := append(append([]any{}, args...), p.Offset, p.Limit)
	pageSQL := fmt.Sprintf("SELECT %s FROM products%s ORDER BY %s %s OFFSET $%d LIMIT $%d",
		productColumns, where, column, direction, len(args)+1, len(args)+2)

	return listQuery{
		countSQL:  "SELECT COUNT(*) FROM products" + where,
		countArgs: args,
		pageSQL:   pageSQL,
		pageArgs:  pageArgs,
	}, nil
}
