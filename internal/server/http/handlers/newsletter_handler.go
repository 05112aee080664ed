package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/server/http/dto"
)

// NewsletterHandler manages subscription and issue endpoints.
type NewsletterHandler struct {
	facade NewsletterFacade
}

// NewNewsletterHandler constructs NewsletterHandler.
func NewNewsletterHandler(facade NewsletterFacade) *NewsletterHandler {
	return &NewsletterHandler{facade: facade}
}

// Subscribe handles POST /api/newsletter/subscribe without auth.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sub, err := h.facade.Subscribe(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSubscriberResponse(sub))
}

// Unsubscribe handles POST /api/newsletter/unsubscribe.
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req dto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UnsubscribeByToken handles GET /api/newsletter/unsubscribe/:token,
// the link embedded in every issue.
func (h *NewsletterHandler) UnsubscribeByToken(c *gin.Context) {
	if err := h.facade.UnsubscribeByToken(c.Request.Context(), c.Param("token")); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Subscribers handles GET /api/newsletter/subscribers.
func (h *NewsletterHandler) Subscribers(c *gin.Context) {
	subs, err := h.facade.Subscribers(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	out := make([]dto.SubscriberResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toSubscriberResponse(&subs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateSubscriber handles PUT /api/newsletter/subscribers/:id.
func (h *NewsletterHandler) UpdateSubscriber(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req dto.SubscriberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateSubscriber(c.Request.Context(), id, req.Name, req.Subscribed); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteSubscriber handles DELETE /api/newsletter/subscribers/:id.
func (h *NewsletterHandler) DeleteSubscriber(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteSubscriber(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Create handles POST /api/newsletter.
func (h *NewsletterHandler) Create(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	issue, err := h.facade.CreateNewsletter(c.Request.Context(), req.Subject, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toNewsletterResponse(issue))
}

// List handles GET /api/newsletter.
func (h *NewsletterHandler) List(c *gin.Context) {
	issues, err := h.facade.Newsletters(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	out := make([]dto.NewsletterResponse, 0, len(issues))
	for i := range issues {
		out = append(out, toNewsletterResponse(&issues[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PUT /api/newsletter/:id.
func (h *NewsletterHandler) Update(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req dto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	issue, err := h.facade.UpdateNewsletter(c.Request.Context(), id, req.Subject, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNewsletterResponse(issue))
}

// Send handles POST /api/newsletter/:id/send.
func (h *NewsletterHandler) Send(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	issue, err := h.facade.SendNewsletter(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNewsletterResponse(issue))
}

// Delete handles DELETE /api/newsletter/:id.
func (h *NewsletterHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteNewsletter(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func toSubscriberResponse(s *model.Subscriber) dto.SubscriberResponse {
	return dto.SubscriberResponse{
		ID:         s.ID,
		Email:      s.Email,
		Name:       s.Name,
		Subscribed: s.Subscribed,
		CreatedAt:  s.CreatedAt,
	}
}

func toNewsletterResponse(n *model.Newsletter) dto.NewsletterResponse {
	return dto.NewsletterResponse{
		ID:        n.ID,
		Subject:   n.Subject,
		Content:   n.Content,
		Status:    string(n.Status),
		SentAt:    n.SentAt,
		CreatedAt: n.CreatedAt,
	}
}
