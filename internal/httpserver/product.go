package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"product-catalog/internal/domain"
	productrepo "product-catalog/internal/repository/product"
	productsvc "product-catalog/internal/service/product"
)

type productHandler struct {
	svc    *productsvc.Service
	logger *log.Logger
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

// toDomain validates the contract and normalizes the name by trimming
// surrounding whitespace.
func (r createProductRequest) toDomain() (domain.NewProduct, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return domain.NewProduct{}, errors.New("name cannot be empty")
	}
	if r.Price <= 0 {
		return domain.NewProduct{}, errors.New("price must be positive")
	}
	if strings.TrimSpace(r.Category) == "" {
		return domain.NewProduct{}, errors.New("category cannot be empty")
	}
	return domain.NewProduct{
		Name:        name,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
	}, nil
}

// nullableString distinguishes a JSON field that was omitted from one
// explicitly set to null: UnmarshalJSON only runs when the key is present.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

type updateProductRequest struct {
	Name        *string        `json:"name"`
	Price       *float64       `json:"price"`
	Category    *string        `json:"category"`
	Description nullableString `json:"description"`
}

// toDomain validates every supplied field under the create rules. Explicit
// null on a non-nullable field counts as omitted; only description keeps the
// set-vs-null distinction.
func (r updateProductRequest) toDomain() (domain.ProductUpdate, error) {
	var upd domain.ProductUpdate
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return domain.ProductUpdate{}, errors.New("name cannot be empty")
		}
		upd.Name = &name
	}
	if r.Price != nil {
		if *r.Price <= 0 {
			return domain.ProductUpdate{}, errors.New("price must be positive")
		}
		upd.Price = r.Price
	}
	if r.Category != nil {
		if strings.TrimSpace(*r.Category) == "" {
			return domain.ProductUpdate{}, errors.New("category cannot be empty")
		}
		upd.Category = r.Category
	}
	if r.Description.Set {
		upd.DescriptionSet = true
		upd.Description = r.Description.Value
	}
	return upd, nil
}

type listProductsQuery struct {
	Page     int      `form:"page,default=1" binding:"min=1"`
	Limit    int      `form:"limit,default=10" binding:"min=1,max=100"`
	Search   string   `form:"search"`
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	SortBy   string   `form:"sortBy,default=id" binding:"oneof=id name price category created_at"`
	Order    string   `form:"order,default=asc" binding:"oneof=asc desc"`
}

type productListResponse struct {
	Items      []domain.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

type bulkUploadRequest struct {
	Products []createProductRequest `json:"products"`
}

func (h *productHandler) create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	fields, err := req.toDomain()
	if err != nil {
		validationError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), fields)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *productHandler) list(c *gin.Context) {
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}

	page, err := h.svc.List(c.Request.Context(), productsvc.ListQuery{
		Page:     q.Page,
		Limit:    q.Limit,
		Search:   q.Search,
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		SortBy:   productrepo.SortKey(q.SortBy),
		Order:    productrepo.SortOrder(q.Order),
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, productListResponse{
		Items:      page.Items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

func (h *productHandler) get(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *productHandler) update(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	upd, err := req.toDomain()
	if err != nil {
		validationError(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *productHandler) delete(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	if !deleted {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *productHandler) categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// bulkUpload validates every item before the first write; a single invalid
// item rejects the whole request. Store-level failures arrive after a full
// rollback.
func (h *productHandler) bulkUpload(c *gin.Context) {
	var req bulkUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	if len(req.Products) == 0 {
		validationError(c, errors.New("products cannot be empty"))
		return
	}

	items := make([]domain.NewProduct, 0, len(req.Products))
	for i, p := range req.Products {
		fields, err := p.toDomain()
		if err != nil {
			validationError(c, fmt.Errorf("products[%d]: %w", i, err))
			return
		}
		items = append(items, fields)
	}

	created, err := h.svc.BulkCreate(c.Request.Context(), items)
	if err != nil {
		h.logger.Printf("bulk upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to upload products: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Products uploaded successfully",
		"count":   len(created),
	})
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationError(c, errors.New("invalid product id"))
		return 0, false
	}
	return id, true
}

func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
