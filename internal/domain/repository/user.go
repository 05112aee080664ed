package repository

import (
	"context"
	"time"

	"github.com/mgv-tech/backoffice/internal/domain/model"
)

// UserRepository describes persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateProfile(ctx context.Context, id int64, name, email string) (*model.User, error)
	UpdateRole(ctx context.Context, id int64, role model.Role) error
	SetDisabled(ctx context.Context, id int64, disabled bool) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetResetToken(ctx context.Context, id int64, tokenHash string, expiresAt time.Time) error
	// ResetPassword validates the token hash and expiry, replaces the
	// password, and clears the token in a single operation.
	ResetPassword(ctx context.Context, tokenHash, passwordHash string) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}
