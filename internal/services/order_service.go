// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"productshop/internal/apperrors"
	"productshop/internal/cart"
	"productshop/internal/database"
	"productshop/internal/models"
)

type OrderService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:  db,
		now: time.Now,
	}
}

// NewOrderServiceWithClock injects the clock used to stamp
// FinishedOn, for tests.
func NewOrderServiceWithClock(db *gorm.DB, now func() time.Time) *OrderService {
	return &OrderService{db: db, now: now}
}

// BuildOrder assembles an order draft from a cart snapshot. Each cart
// line expands into quantity individual unit rows, and the total is
// the cart total, computed once here and never recomputed afterwards.
func BuildOrder(items []cart.Item, customer *models.User) *models.Order {
	order := &models.Order{
		CustomerID: customer.ID,
	}

	total := decimal.Zero
	for _, item := range items {
		for i := 0; i < item.Quantity; i++ {
			order.Products = append(order.Products, models.OrderProduct{
				ProductID: item.ProductID,
				Name:      item.Name,
				ImageURL:  item.ImageURL,
				Price:     item.UnitPrice,
			})
		}
		total = total.Add(item.Subtotal())
	}

	order.TotalPrice = total
	return order
}

// Checkout resolves the customer, builds the order from the cart
// snapshot, stamps FinishedOn and persists order plus line items in
// one transaction. A persistence failure surfaces to the caller
// unchanged; there is no retry.
func (s *OrderService) Checkout(items []cart.Item, username string) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.Validation("cart is empty")
	}

	var customer models.User
	if err := s.db.Where("username = ?", username).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("username not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	order := BuildOrder(items, &customer)
	order.FinishedOn = s.now()

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Customer").Preload("Products").Order("finished_on asc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrdersByCustomer(username string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Joins("JOIN users ON users.id = orders.customer_id").
		Where("users.username = ?", username).
		Preload("Customer").
		Preload("Products").
		Order("orders.finished_on asc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load customer orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Customer").Preload("Products").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order id not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}
