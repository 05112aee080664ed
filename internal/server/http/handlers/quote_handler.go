package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/server/http/dto"
)

// QuoteHandler manages quote request endpoints.
type QuoteHandler struct {
	facade QuoteFacade
}

// NewQuoteHandler constructs QuoteHandler.
func NewQuoteHandler(facade QuoteFacade) *QuoteHandler {
	return &QuoteHandler{facade: facade}
}

// Submit handles POST /api/quotes without auth.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var req dto.QuoteRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	q, err := h.facade.SubmitQuote(c.Request.Context(), req.Name, req.Email, req.Phone, req.Service, req.Message)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toQuoteResponse(q))
}

// Get handles GET /api/quotes/:id for admins.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	q, err := h.facade.Quote(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(q))
}

// List handles GET /api/quotes for admins.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.facade.AllQuotes(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponses(quotes))
}

// Mine handles GET /api/quotes/mine: quotes submitted with the caller's
// account email.
func (h *QuoteHandler) Mine(c *gin.Context) {
	usr, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}

	quotes, err := h.facade.QuotesByEmail(c.Request.Context(), usr.Email)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponses(quotes))
}

// Assigned handles GET /api/quotes/assigned: quotes assigned to the
// calling admin.
func (h *QuoteHandler) Assigned(c *gin.Context) {
	quotes, err := h.facade.AssignedQuotes(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponses(quotes))
}

// Assign handles PUT /api/quotes/:id/assign.
func (h *QuoteHandler) Assign(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuoteAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AssignQuote(c.Request.Context(), id, req.AdminID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AdminReply handles POST /api/quotes/:id/reply.
func (h *QuoteHandler) AdminReply(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuoteReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reply, err := h.facade.AdminReplyQuote(c.Request.Context(), id, CurrentUserID(c), req.Message)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toQuoteReplyResponse(reply))
}

// CustomerReply handles POST /api/quotes/:id/customer-reply.
func (h *QuoteHandler) CustomerReply(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuoteReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usr, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}

	reply, err := h.facade.CustomerReplyQuote(c.Request.Context(), id, usr.Email, req.Message)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toQuoteReplyResponse(reply))
}

// SetStatus handles PUT /api/quotes/:id/status.
func (h *QuoteHandler) SetStatus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetQuoteStatus(c.Request.Context(), id, model.QuoteStatus(req.Status)); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/quotes/:id.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteQuote(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func toQuoteReplyResponse(r *model.QuoteReply) dto.QuoteReplyResponse {
	return dto.QuoteReplyResponse{
		ID:          r.ID,
		SenderEmail: r.SenderEmail,
		SenderType:  r.SenderType,
		Message:     r.Message,
		RepliedAt:   r.RepliedAt,
	}
}

func toQuoteResponse(q *model.QuoteRequest) dto.QuoteResponse {
	replies := make([]dto.QuoteReplyResponse, 0, len(q.Replies))
	for i := range q.Replies {
		replies = append(replies, toQuoteReplyResponse(&q.Replies[i]))
	}

	return dto.QuoteResponse{
		ID:         q.ID,
		Name:       q.Name,
		Email:      q.Email,
		Phone:      q.Phone,
		Service:    q.Service,
		Message:    q.Message,
		Status:     string(q.Status),
		AssignedTo: q.AssignedTo,
		AssignedAt: q.AssignedAt,
		CreatedAt:  q.CreatedAt,
		Replies:    replies,
	}
}

func toQuoteResponses(quotes []model.QuoteRequest) []dto.QuoteResponse {
	out := make([]dto.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, toQuoteResponse(&quotes[i]))
	}
	return out
}
