package repository

import (
	"context"

	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// QuoteRepository manages quote requests and their reply threads.
type QuoteRepository interface {
	Create(ctx context.Context, q *model.QuoteRequest) (*model.QuoteRequest, error)
	GetByID(ctx context.Context, id int64) (*model.QuoteRequest, error)
	ListAll(ctx context.Context) ([]model.QuoteRequest, error)
	ListByEmail(ctx context.Context, email string) ([]model.QuoteRequest, error)
	ListAssignedTo(ctx context.Context, adminID int64) ([]model.QuoteRequest, error)
	Assign(ctx context.Context, id, adminID int64) error
	UpdateStatus(ctx context.Context, id int64, status model.QuoteStatus) error
	// AddReply appends the reply and moves the quote to status in one
	// transaction so the thread and the ball-in-whose-court marker
	// never diverge.
	AddReply(ctx context.Context, reply *model.QuoteReply, status model.QuoteStatus) (*model.QuoteReply, error)
	Delete(ctx context.Context, id int64) error
}
