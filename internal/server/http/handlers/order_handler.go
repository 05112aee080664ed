package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/server/http/dto"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]usecase.OrderItemInput, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		items = append(items, usecase.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUserID(c), usecase.CreateOrderInput{
		Items:           items,
		ShippingAddress: toShippingAddress(req.ShippingAddress),
		PaymentMethod:   req.PaymentMethod,
		PaymentResult:   toPaymentResult(req.PaymentResult),
		ItemsPrice:      req.ItemsPrice,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
		TotalPrice:      req.TotalPrice,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id, CurrentUserID(c), CurrentRole(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Track handles GET /api/orders/track/:orderNumber without auth. Only
// the reduced projection goes out.
func (h *OrderHandler) Track(c *gin.Context) {
	status, err := h.facade.TrackOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TrackResponse{
		Number:     status.Number,
		Status:     string(status.Status),
		IsPaid:     status.IsPaid,
		TotalPrice: status.TotalPrice,
		CreatedAt:  status.CreatedAt,
	})
}

// Mine handles GET /api/orders/mine.
func (h *OrderHandler) Mine(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// List handles GET /api/orders for admins.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Deliver handles PUT /api/orders/:id/deliver.
func (h *OrderHandler) Deliver(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.DeliverOrder(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// SetStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func toShippingAddress(p dto.ShippingAddressPayload) model.ShippingAddress {
	return model.ShippingAddress{
		Address1: p.Address1,
		Address2: p.Address2,
		City:     p.City,
		State:    p.State,
		ZipCode:  p.ZipCode,
		Country:  p.Country,
	}
}

func toPaymentResult(p dto.PaymentResultPayload) model.PaymentResult {
	return model.PaymentResult{
		ID:           p.ID,
		Status:       p.Status,
		UpdateTime:   p.UpdateTime,
		EmailAddress: p.EmailAddress,
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	return dto.OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		Number:     order.Number,
		Status:     string(order.Status),
		OrderItems: items,
		ShippingAddress: dto.ShippingAddressPayload{
			Address1: order.ShippingAddress.Address1,
			Address2: order.ShippingAddress.Address2,
			City:     order.ShippingAddress.City,
			State:    order.ShippingAddress.State,
			ZipCode:  order.ShippingAddress.ZipCode,
			Country:  order.ShippingAddress.Country,
		},
		PaymentMethod: order.PaymentMethod,
		PaymentResult: dto.PaymentResultPayload{
			ID:           order.PaymentResult.ID,
			Status:       order.PaymentResult.Status,
			UpdateTime:   order.PaymentResult.UpdateTime,
			EmailAddress: order.PaymentResult.EmailAddress,
		},
		ItemsPrice:    order.ItemsPrice,
		TaxPrice:      order.TaxPrice,
		ShippingPrice: order.ShippingPrice,
		TotalPrice:    order.TotalPrice,
		IsPaid:        order.IsPaid,
		PaidAt:        order.PaidAt,
		IsDelivered:   order.IsDelivered,
		DeliveredAt:   order.DeliveredAt,
		CreatedAt:     order.CreatedAt,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}
