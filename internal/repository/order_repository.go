package repository

import (
	"context"

	"gorm.io/gorm"

	"orderdash/internal/model"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	Delete(ctx context.Context, order *model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	SearchByProduct(ctx context.Context, substring string) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create creates a new order record; the store assigns its ID.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByID finds an order by ID.
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes the order permanently.
func (r *orderRepository) Delete(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Delete(order).Error
}

// List returns all orders, newest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SearchByProduct returns orders whose product name contains substring,
// newest first. Matching semantics are the store's LIKE collation.
func (r *orderRepository) SearchByProduct(ctx context.Context, substring string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).
		Where("product_name LIKE ?", "%"+substring+"%").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the total number of orders.
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
