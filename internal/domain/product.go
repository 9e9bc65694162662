package domain

import "time"

// Product is a single catalog entry. Description is nil when the record has
// no description; UpdatedAt is nil until the record is first updated.
type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// NewProduct holds the fields the store needs to create a product. The
// contract layer validates them before they get here.
type NewProduct struct {
	Name        string
	Price       float64
	Category    string
	Description *string
}

// ProductUpdate is a partial update. A nil field was not supplied and must be
// left untouched. Description may be explicitly set to null, so
// DescriptionSet records whether the field was supplied at all.
type ProductUpdate struct {
	Name           *string
	Price          *float64
	Category       *string
	Description    *string
	DescriptionSet bool
}

// Empty reports whether the update supplies no fields.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Price == nil && u.Category == nil && !u.DescriptionSet
}
