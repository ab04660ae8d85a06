package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"orderdash/internal/cache"
	"orderdash/internal/errors"
	"orderdash/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) SearchByProduct(ctx context.Context, substring string) ([]model.Order, error) {
	args := m.Called(ctx, substring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// nilCache exercises the fail-safe path: every lookup is a miss.
var nilCache *cache.Client

func TestOrderService_AddOrder(t *testing.T) {
	tests := []struct {
		name          string
		productName   string
		amount        string
		setupMock     func(*MockOrderRepository)
		expectedError error
	}{
		{
			name:        "successful add",
			productName: "Widget",
			amount:      "19.99",
			setupMock: func(m *MockOrderRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "missing product name",
			productName:   "",
			amount:        "19.99",
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: errors.ErrMissingField,
		},
		{
			name:          "missing amount",
			productName:   "Widget",
			amount:        "",
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: errors.ErrMissingField,
		},
		{
			name:          "non-numeric amount",
			productName:   "Widget",
			amount:        "nineteen",
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: errors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			tt.setupMock(mockRepo)

			svc := NewOrderService(mockRepo, new(MockAccountRepository), nilCache)
			order, err := svc.AddOrder(context.Background(), tt.productName, tt.amount)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, tt.productName, order.ProductName)
				assert.True(t, decimal.RequireFromString(tt.amount).Equal(order.Amount))
			}

			// Nothing may reach the store on a validation failure.
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockOrderRepository)
		expectedError error
	}{
		{
			name: "successful delete",
			id:   7,
			setupMock: func(m *MockOrderRepository) {
				order := &model.Order{ID: 7, ProductName: "Widget"}
				m.On("FindByID", mock.Anything, uint(7)).Return(order, nil)
				m.On("Delete", mock.Anything, order).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "unknown id fails",
			id:   99,
			setupMock: func(m *MockOrderRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			tt.setupMock(mockRepo)

			svc := NewOrderService(mockRepo, new(MockAccountRepository), nilCache)
			err := svc.DeleteOrder(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	all := []model.Order{
		{ID: 2, ProductName: "Widget"},
		{ID: 1, ProductName: "Gadget"},
	}

	t.Run("empty search returns full list", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockRepo.On("List", mock.Anything).Return(all, nil)

		svc := NewOrderService(mockRepo, new(MockAccountRepository), nilCache)
		orders, err := svc.ListOrders(context.Background(), "")

		assert.NoError(t, err)
		assert.Equal(t, all, orders)
		mockRepo.AssertExpectations(t)
	})

	t.Run("search delegates to substring match", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockRepo.On("SearchByProduct", mock.Anything, "Widg").Return(all[:1], nil)

		svc := NewOrderService(mockRepo, new(MockAccountRepository), nilCache)
		orders, err := svc.ListOrders(context.Background(), "Widg")

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, "Widget", orders[0].ProductName)
		mockRepo.AssertExpectations(t)
	})
}

func TestOrderService_Stats(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockAccounts := new(MockAccountRepository)
	mockAccounts.On("Count", mock.Anything).Return(int64(1), nil)
	mockOrders.On("Count", mock.Anything).Return(int64(5), nil)

	svc := NewOrderService(mockOrders, mockAccounts, nilCache)
	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, Stats{Accounts: 1, Orders: 5}, stats)
	mockOrders.AssertExpectations(t)
	mockAccounts.AssertExpectations(t)
}
