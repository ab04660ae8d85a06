package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"orderdash/internal/cache"
	"orderdash/internal/errors"
	"orderdash/internal/model"
	"orderdash/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// Stats holds the dashboard counters.
type Stats struct {
	Accounts int64 `json:"accounts"`
	Orders   int64 `json:"orders"`
}

// OrderService handles order operations.
type OrderService interface {
	AddOrder(ctx context.Context, productName, amount string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
	ListOrders(ctx context.Context, search string) ([]model.Order, error)
	Stats(ctx context.Context) (Stats, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	accountRepo repository.AccountRepository
	cache       *cache.Client
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, accountRepo repository.AccountRepository, cache *cache.Client) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// AddOrder validates the raw form values and persists a new order.
// Validation failures write nothing.
func (s *orderService) AddOrder(ctx context.Context, productName, amount string) (*model.Order, error) {
	if productName == "" || amount == "" {
		return nil, errors.ErrMissingField
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, errors.ErrInvalidAmount
	}

	order := &model.Order{
		ProductName: productName,
		Amount:      value,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey)
	return order, nil
}

// DeleteOrder removes the order with the given id. Deleting an id that does
// not exist, or was already deleted, fails with ErrOrderNotFound.
func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrOrderNotFound
		}
		return fmt.Errorf("find order %d: %w", id, err)
	}

	if err := s.orderRepo.Delete(ctx, order); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	_ = s.cache.Delete(ctx, statsCacheKey)
	return nil
}

// ListOrders returns orders matching the search substring, or all orders
// newest first when search is empty.
func (s *orderService) ListOrders(ctx context.Context, search string) ([]model.Order, error) {
	if search == "" {
		return s.orderRepo.List(ctx)
	}
	return s.orderRepo.SearchByProduct(ctx, search)
}

// Stats returns the dashboard counters with short-lived caching.
func (s *orderService) Stats(ctx context.Context) (Stats, error) {
	// Try cache first
	var cached Stats
	if ok, _ := s.cache.GetJSON(ctx, statsCacheKey, &cached); ok {
		return cached, nil
	}

	accounts, err := s.accountRepo.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count accounts: %w", err)
	}
	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count orders: %w", err)
	}

	stats := Stats{Accounts: accounts, Orders: orders}
	_ = s.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL)
	return stats, nil
}
