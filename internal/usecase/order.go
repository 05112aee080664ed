package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/domain/repository"
)

// OrderNotifier receives order lifecycle events. Calls must not block
// and must never fail the triggering operation.
type OrderNotifier interface {
	OrderCreated(order *model.Order, user *model.User)
	OrderDelivered(order *model.Order, user *model.User)
	OrderStatusChanged(order *model.Order, user *model.User)
}

// OrderItemInput identifies a requested product line at checkout.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderInput carries everything the checkout submits.
type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress model.ShippingAddress
	PaymentMethod   string
	PaymentResult   model.PaymentResult
	ItemsPrice      float64
	TaxPrice        float64
	ShippingPrice   float64
	TotalPrice      float64
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	counters repository.CounterRepository
	users    repository.UserRepository
	notifier OrderNotifier
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	counters repository.CounterRepository,
	users repository.UserRepository,
	notifier OrderNotifier,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, counters: counters, users: users, notifier: notifier}
}

// Create places an order for the user. Every requested item is checked
// against the catalog before anything is written, so a rejection names
// all failing items at once. The order row, its item snapshots, and the
// stock decrements then commit in a single transaction; concurrent
// orders that drain stock after the check still roll back cleanly.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, in CreateOrderInput) (*model.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: no order items", domainErrors.ErrInvalidInput)
	}

	ids := make([]int64, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := u.products.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	catalog := make(map[int64]*model.Product, len(products))
	for i := range products {
		catalog[products[i].ID] = &products[i]
	}

	var problems []string
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		p, ok := catalog[item.ProductID]
		if !ok {
			problems = append(problems, fmt.Sprintf("product %d not found", item.ProductID))
			continue
		}
		if item.Quantity <= 0 {
			problems = append(problems, fmt.Sprintf("invalid quantity for %s", p.Name))
			continue
		}
		if p.StockQuantity < item.Quantity {
			problems = append(problems, fmt.Sprintf("not enough stock for %s: available %d, requested %d",
				p.Name, p.StockQuantity, item.Quantity))
			continue
		}
		items = append(items, model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  item.Quantity,
			Price:     p.Price,
			Image:     p.Image,
		})
	}
	if len(problems) > 0 {
		return nil, domainErrors.NewValidation(problems)
	}

	seq, err := u.counters.NextValue(ctx, orderCounterName)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:          userID,
		Number:          FormatOrderNumber(seq),
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentResult:   in.PaymentResult,
		ItemsPrice:      in.ItemsPrice,
		TaxPrice:        in.TaxPrice,
		ShippingPrice:   in.ShippingPrice,
		TotalPrice:      in.TotalPrice,
		Status:          model.OrderStatusPending,
	}
	if in.PaymentMethod == model.PaymentMethodCard {
		now := time.Now()
		order.Status = model.OrderStatusProcessing
		order.IsPaid = true
		order.PaidAt = &now
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if usr, err := u.users.GetByID(ctx, userID); err == nil {
		u.notifier.OrderCreated(created, usr)
	}
	return created, nil
}

// Get returns an order visible to the requester: the owner or any admin.
func (u *OrderUseCase) Get(ctx context.Context, orderID, requesterID int64, requesterRole model.Role) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && requesterRole != model.RoleAdmin {
		return nil, domainErrors.ErrUnauthorized
	}
	return order, nil
}

// TrackByNumber resolves a public tracking lookup. Only the reduced
// projection leaves this method.
func (u *OrderUseCase) TrackByNumber(ctx context.Context, number string) (*model.PublicOrderStatus, error) {
	number = NormalizeOrderNumber(number)
	if number == "" {
		return nil, fmt.Errorf("%w: empty order number", domainErrors.ErrInvalidInput)
	}
	order, err := u.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return order.Public(), nil
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order for the admin dashboard.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// MarkDelivered moves an order to Delivered. Repeated calls are
// idempotent: the original delivery time is preserved.
func (u *OrderUseCase) MarkDelivered(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.setStatus(ctx, orderID, model.OrderStatusDelivered)
}

// SetStatus applies an admin status change. Any recognised status may
// follow any other; entering Delivered stamps the delivery time and
// leaving it clears the delivery marker again.
func (u *OrderUseCase) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}
	return u.setStatus(ctx, orderID, status)
}

func (u *OrderUseCase) setStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	isDelivered := false
	var deliveredAt *time.Time
	if status == model.OrderStatusDelivered {
		isDelivered = true
		deliveredAt = order.DeliveredAt
		if deliveredAt == nil {
			now := time.Now()
			deliveredAt = &now
		}
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status, isDelivered, deliveredAt); err != nil {
		return nil, err
	}
	order.Status = status
	order.IsDelivered = isDelivered
	order.DeliveredAt = deliveredAt

	if usr, err := u.users.GetByID(ctx, order.UserID); err == nil {
		if status == model.OrderStatusDelivered {
			u.notifier.OrderDelivered(order, usr)
		} else {
			u.notifier.OrderStatusChanged(order, usr)
		}
	}
	return order, nil
}

// Delete removes an order permanently.
func (u *OrderUseCase) Delete(ctx context.Context, orderID int64) error {
	return u.orders.Delete(ctx, orderID)
}
