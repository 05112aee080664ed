package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	"github.com/mgv-tech/backoffice/internal/domain/repository"
	pkgAuth "github.com/mgv-tech/backoffice/internal/pkg/auth"
)

// resetTokenTTL bounds how long a password reset link stays usable.
const resetTokenTTL = time.Hour

// AuthNotifier receives account lifecycle events.
type AuthNotifier interface {
	UserRegistered(user *model.User)
	PasswordResetRequested(user *model.User, token string)
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	notifier AuthNotifier
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, notifier AuthNotifier) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, notifier: notifier}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a customer account and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email, and password are required", domainErrors.ErrInvalidInput)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, email, hash, model.RoleCustomer)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID, string(usr.Role))
	if err != nil {
		return nil, "", err
	}

	u.notifier.UserRegistered(usr)
	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
// A disabled account is rejected even with the correct password.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if usr.Disabled {
		return nil, "", domainErrors.ErrAccountDisabled
	}

	token, err := u.tokens.IssueToken(usr.ID, string(usr.Role))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the user ID and role from a token.
func (u *AuthUseCase) ParseToken(token string) (int64, string, error) {
	if token == "" {
		return 0, "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateProfile changes the user's own name, email, and optionally the
// password when a non-empty one is supplied.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, id int64, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domainErrors.ErrInvalidInput)
	}

	usr, err := u.users.UpdateProfile(ctx, id, name, email)
	if err != nil {
		return nil, err
	}
	if password != "" {
		hash, err := u.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		if err := u.users.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}
	return usr, nil
}

// ListUsers returns every account for the admin dashboard.
func (u *AuthUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// ListAdmins returns accounts holding the administrator role.
func (u *AuthUseCase) ListAdmins(ctx context.Context) ([]model.User, error) {
	return u.users.ListByRole(ctx, model.RoleAdmin)
}

// SetRole changes an account's role.
func (u *AuthUseCase) SetRole(ctx context.Context, id int64, role model.Role) error {
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", domainErrors.ErrInvalidInput, role)
	}
	return u.users.UpdateRole(ctx, id, role)
}

// SetDisabled enables or disables an account.
func (u *AuthUseCase) SetDisabled(ctx context.Context, id int64, disabled bool) error {
	return u.users.SetDisabled(ctx, id, disabled)
}

// DeleteUser removes an account permanently.
func (u *AuthUseCase) DeleteUser(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}

// RequestPasswordReset issues a one-hour reset token and mails it to
// the account owner. Only the token's digest is stored.
func (u *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	usr, err := u.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	token, err := randomToken(32)
	if err != nil {
		return err
	}
	if err := u.users.SetResetToken(ctx, usr.ID, hashToken(token), time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	u.notifier.PasswordResetRequested(usr, token)
	return nil
}

// ResetPassword redeems a reset token and installs the new password.
func (u *AuthUseCase) ResetPassword(ctx context.Context, token, password string) (*model.User, error) {
	if token == "" || password == "" {
		return nil, fmt.Errorf("%w: token and password are required", domainErrors.ErrInvalidInput)
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return u.users.ResetPassword(ctx, hashToken(token), hash)
}
