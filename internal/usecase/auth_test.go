package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/mgv-tech/backoffice/internal/domain/errors"
	"github.com/mgv-tech/backoffice/internal/domain/model"
	pkgAuth "github.com/mgv-tech/backoffice/internal/pkg/auth"
	testhelpers "github.com/mgv-tech/backoffice/internal/test"
	"github.com/mgv-tech/backoffice/internal/usecase"
)

func newAuthFixture() (*usecase.AuthUseCase, *testhelpers.UserRepositoryStub, *testhelpers.NotifierRecorder) {
	users := testhelpers.NewUserRepositoryStub()
	recorder := &testhelpers.NotifierRecorder{}
	uc := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, recorder)
	return uc, users, recorder
}

func TestAuthRegister(t *testing.T) {
	uc, users, recorder := newAuthFixture()

	usr, token, err := uc.Register(context.Background(), "Ada", "  Ada@Example.com ", "secret")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if usr.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.Role != model.RoleCustomer {
		t.Fatalf("new account got role %q", usr.Role)
	}
	if token == "" {
		t.Fatal("no token issued")
	}
	if users.ByID[usr.ID].PasswordHash != "hash:secret" {
		t.Fatalf("password stored wrong: %q", users.ByID[usr.ID].PasswordHash)
	}
	if recorder.Count("user-registered") != 1 {
		t.Fatalf("expected one registration event, got %d", recorder.Count("user-registered"))
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	uc, users, _ := newAuthFixture()
	users.Add(&model.User{Name: "Ada", Email: "ada@example.com", Role: model.RoleCustomer})

	_, _, err := uc.Register(context.Background(), "Other", "ada@example.com", "secret")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	uc, _, _ := newAuthFixture()
	for _, tc := range []struct{ name, email, password string }{
		{"", "ada@example.com", "secret"},
		{"Ada", "", "secret"},
		{"Ada", "ada@example.com", ""},
	} {
		_, _, err := uc.Register(context.Background(), tc.name, tc.email, tc.password)
		if !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("register(%q,%q,%q): expected ErrInvalidInput, got %v", tc.name, tc.email, tc.password, err)
		}
	}
}

func TestAuthAuthenticate(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Ada", "ada@example.com", "secret"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	usr, token, err := uc.Authenticate(ctx, "ADA@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if usr.Email != "ada@example.com" || token == "" {
		t.Fatalf("unexpected result: %+v token=%q", usr, token)
	}

	if _, _, err := uc.Authenticate(ctx, "ada@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@example.com", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthAuthenticateDisabledAccount(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()
	usr, _, err := uc.Register(ctx, "Ada", "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	users.ByID[usr.ID].Disabled = true

	if _, _, err := uc.Authenticate(ctx, "ada@example.com", "secret"); !errors.Is(err, domainErrors.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthParseToken(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{
		ParseFn: func(token string) (int64, string, error) {
			if token != "good" {
				return 0, "", pkgAuth.ErrInvalidToken
			}
			return 42, "admin", nil
		},
	}, &testhelpers.NotifierRecorder{})

	id, role, err := uc.ParseToken("good")
	if err != nil || id != 42 || role != "admin" {
		t.Fatalf("unexpected parse result: %d %q %v", id, role, err)
	}
	if _, _, err := uc.ParseToken("bad"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("empty token: expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthUpdateProfile(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()
	usr, _, err := uc.Register(ctx, "Ada", "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	updated, err := uc.UpdateProfile(ctx, usr.ID, "Ada L.", "ada.l@example.com", "")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Name != "Ada L." || updated.Email != "ada.l@example.com" {
		t.Fatalf("profile not updated: %+v", updated)
	}
	if users.ByID[usr.ID].PasswordHash != "hash:secret" {
		t.Fatalf("password changed without request")
	}

	if _, err := uc.UpdateProfile(ctx, usr.ID, "Ada L.", "ada.l@example.com", "newpass"); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if users.ByID[usr.ID].PasswordHash != "hash:newpass" {
		t.Fatalf("password not rehashed: %q", users.ByID[usr.ID].PasswordHash)
	}
}

func TestAuthSetRole(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()
	usr := users.Add(&model.User{Name: "Ada", Email: "ada@example.com", Role: model.RoleCustomer})

	if err := uc.SetRole(ctx, usr.ID, model.RoleAdmin); err != nil {
		t.Fatalf("set role returned error: %v", err)
	}
	if users.ByID[usr.ID].Role != model.RoleAdmin {
		t.Fatalf("role not applied: %q", users.ByID[usr.ID].Role)
	}
	if err := uc.SetRole(ctx, usr.ID, model.Role("superuser")); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestAuthPasswordResetFlow(t *testing.T) {
	uc, _, recorder := newAuthFixture()
	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Ada", "ada@example.com", "secret"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	if err := uc.RequestPasswordReset(ctx, "Ada@Example.com"); err != nil {
		t.Fatalf("request returned error: %v", err)
	}
	if len(recorder.ResetTokens) != 1 {
		t.Fatalf("expected one mailed token, got %d", len(recorder.ResetTokens))
	}
	token := recorder.ResetTokens[0]

	usr, err := uc.ResetPassword(ctx, token, "brand-new")
	if err != nil {
		t.Fatalf("reset returned error: %v", err)
	}
	if usr.PasswordHash != "hash:brand-new" {
		t.Fatalf("password not replaced: %q", usr.PasswordHash)
	}

	if _, _, err := uc.Authenticate(ctx, "ada@example.com", "brand-new"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, err := uc.ResetPassword(ctx, token, "again"); !errors.Is(err, domainErrors.ErrInvalidResetToken) {
		t.Fatalf("token reuse: expected ErrInvalidResetToken, got %v", err)
	}
}

func TestAuthResetPasswordGarbageToken(t *testing.T) {
	uc, _, _ := newAuthFixture()
	if _, err := uc.ResetPassword(context.Background(), "deadbeef", "newpass"); !errors.Is(err, domainErrors.ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
}

func TestAuthRequestPasswordResetUnknownEmail(t *testing.T) {
	uc, _, recorder := newAuthFixture()
	if err := uc.RequestPasswordReset(context.Background(), "nobody@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if recorder.Count("password-reset") != 0 {
		t.Fatalf("notification fired for unknown account")
	}
}
