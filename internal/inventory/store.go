package inventory

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventory-backend/internal/models"
)

// ErrProductNotFound is returned when an id does not resolve to a live
// (non-deleted) product. A soft-deleted product is indistinguishable from a
// product that never existed.
var ErrProductNotFound = errors.New("product not found")

// InsufficientStockError rejects a sell that asks for more than is in stock.
// Available carries the quantity at the time the sell was attempted.
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Available: %d", e.Available)
}

type CreateProductParams struct {
	Name     string
	Quantity int64
	Price    float64
}

// UpdateProductParams carries a partial update. A nil field leaves the stored
// value untouched; a non-nil pointer to a zero value sets the field to zero.
type UpdateProductParams struct {
	Name     *string
	Quantity *int64
	Price    *float64
}

// Store owns all product records and the stock rules around them.
type Store struct {
	db *gorm.DB

	// Default ceiling for the low-stock report when the caller gives none.
	lowStockThreshold int64
}

func NewStore(db *gorm.DB, lowStockThreshold int64) *Store {
	return &Store{db: db, lowStockThreshold: lowStockThreshold}
}

func (s *Store) Create(ctx context.Context, params CreateProductParams) (models.Product, error) {
	p := models.Product{
		ProductName: params.Name,
		Quantity:    params.Quantity,
		Price:       params.Price,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *Store) List(ctx context.Context, includeDeleted bool) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Model(&models.Product{})
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var products []models.Product
	if err := q.Order("product_id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get returns the live product with the given id.
func (s *Store) Get(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).
		Where("product_id = ? AND is_deleted = ?", id, false).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *Store) Update(ctx context.Context, id uint, params UpdateProductParams) (models.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	if params.Name != nil {
		p.ProductName = *params.Name
	}
	if params.Quantity != nil {
		p.Quantity = *params.Quantity
	}
	if params.Price != nil {
		p.Price = *params.Price
	}

	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// UpdateQuantity replaces the stock quantity outright. It is not a delta.
func (s *Store) UpdateQuantity(ctx context.Context, id uint, quantity int64) (models.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	p.Quantity = quantity
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.Product{}, fmt.Errorf("update quantity: %w", err)
	}
	return p, nil
}

// Sell decrements stock by quantity. Existence is checked before sufficiency:
// a missing or deleted product reports ErrProductNotFound even when the sell
// amount could never be satisfied.
func (s *Store) Sell(ctx context.Context, id uint, quantity int64) (models.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	if p.Quantity < quantity {
		return models.Product{}, &InsufficientStockError{Available: p.Quantity}
	}

	p.Quantity -= quantity
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return models.Product{}, fmt.Errorf("sell product: %w", err)
	}
	return p, nil
}

// LowStock lists live products with quantity at or below the threshold,
// lowest stock first. A nil threshold uses the configured default.
func (s *Store) LowStock(ctx context.Context, threshold *int64) ([]models.Product, error) {
	limit := s.lowStockThreshold
	if threshold != nil {
		limit = *threshold
	}

	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("is_deleted = ? AND quantity <= ?", false, limit).
		Order("quantity asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	return products, nil
}

// Delete tombstones the live product with the given id. The row is never
// physically removed. A second delete reports ErrProductNotFound because the
// first one made the row invisible to the lookup.
func (s *Store) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("product_id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
