package repository

import (
	"context"
	"time"

	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
//
// Create inserts the order, its items, and the per-item conditional
// stock decrements in one transaction; if any product no longer has
// enough stock the whole transaction is rolled back and
// ErrInsufficientStock returned. A duplicate order number yields
// ErrConflict.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, isDelivered bool, deliveredAt *time.Time) error
	Delete(ctx context.Context, id int64) error
}
