package model

import "time"

// OrderStatus describes the fulfilment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the five recognised statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethodCard is the immediate-payment method; orders paid with it
// start in Processing with the paid flags set.
const PaymentMethodCard = "Credit/Debit Card"

// OrderItem is an immutable snapshot of a product line at checkout time.
// Later catalog changes never alter a placed order.
type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	Price     float64
	Image     string
}

// ShippingAddress is the destination captured with the order.
type ShippingAddress struct {
	Address1 string
	Address2 string
	City     string
	State    string
	ZipCode  string
	Country  string
}

// PaymentResult mirrors whatever the payment provider returned.
type PaymentResult struct {
	ID           string
	Status       string
	UpdateTime   string
	EmailAddress string
}

// Order is the persisted purchase record. The order number is assigned
// once from the sequence counter and never changes.
type Order struct {
	ID              int64
	UserID          int64
	Number          string
	Items           []OrderItem
	ShippingAddress ShippingAddress
	PaymentMethod   string
	PaymentResult   PaymentResult
	ItemsPrice      float64
	TaxPrice        float64
	ShippingPrice   float64
	TotalPrice      float64
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PublicOrderStatus is the unauthenticated tracking projection. It must
// never carry address, items, user, or payment details.
type PublicOrderStatus struct {
	Number     string
	Status     OrderStatus
	IsPaid     bool
	TotalPrice float64
	CreatedAt  time.Time
}

// Public projects the order down to its tracking view.
func (o *Order) Public() *PublicOrderStatus {
	return &PublicOrderStatus{
		Number:     o.Number,
		Status:     o.Status,
		IsPaid:     o.IsPaid,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}
