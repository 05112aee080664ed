package dto

import "time"

// OrderItemRequest identifies one requested product line.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"qty"`
}

// ShippingAddressPayload carries the delivery destination.
type ShippingAddressPayload struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

// PaymentResultPayload mirrors the payment provider callback.
type PaymentResultPayload struct {
	ID           string `json:"id,omitempty"`
	Status       string `json:"status,omitempty"`
	UpdateTime   string `json:"updateTime,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// CreateOrderRequest describes the checkout payload.
type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems"`
	ShippingAddress ShippingAddressPayload `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentResult   PaymentResultPayload   `json:"paymentResult"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

// OrderStatusRequest sets a new fulfilment status.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is a snapshot line in an order view.
type OrderItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"qty"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

// OrderResponse is the full order view for the owner or an admin.
type OrderResponse struct {
	ID              int64                  `json:"id"`
	UserID          int64                  `json:"userId"`
	Number          string                 `json:"orderNumber"`
	Status          string                 `json:"status"`
	OrderItems      []OrderItemResponse    `json:"orderItems"`
	ShippingAddress ShippingAddressPayload `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentResult   PaymentResultPayload   `json:"paymentResult"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TotalPrice      float64                `json:"totalPrice"`
	IsPaid          bool                   `json:"isPaid"`
	PaidAt          *time.Time             `json:"paidAt,omitempty"`
	IsDelivered     bool                   `json:"isDelivered"`
	DeliveredAt     *time.Time             `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// TrackResponse is the reduced public tracking view.
type TrackResponse struct {
	Number     string    `json:"orderNumber"`
	Status     string    `json:"status"`
	IsPaid     bool      `json:"isPaid"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}
