package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(vals map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := vals[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/backoffice",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address: %q", cfg.RunAddress)
	}
	if cfg.MailWorkers != 2 || cfg.MailQueueSize != 128 {
		t.Fatalf("unexpected mail defaults: %d %d", cfg.MailWorkers, cfg.MailQueueSize)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, envMap(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	cfg, err := load([]string{"-a", ":9090", "-d", "postgres://flag/db", "-shutdown-timeout", "3s"}, envMap(map[string]string{
		"RUN_ADDRESS":  ":8081",
		"DATABASE_URI": "postgres://env/db",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" || cfg.DatabaseURI != "postgres://flag/db" {
		t.Fatalf("flags did not win: %q %q", cfg.RunAddress, cfg.DatabaseURI)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.ShutdownTimeout)
	}
}

func TestLoadAdminEmails(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/db",
		"ADMIN_EMAILS": " boss@mgv.example , ops@mgv.example,,",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.AdminEmails) != 2 || cfg.AdminEmails[0] != "boss@mgv.example" || cfg.AdminEmails[1] != "ops@mgv.example" {
		t.Fatalf("unexpected admin emails: %v", cfg.AdminEmails)
	}
}

func TestLoadAdminEmailFallback(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/db",
		"ADMIN_EMAIL":  "boss@mgv.example",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.AdminEmails) != 1 || cfg.AdminEmails[0] != "boss@mgv.example" {
		t.Fatalf("unexpected admin emails: %v", cfg.AdminEmails)
	}
}

func TestLoadJWTSecretFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI":    "postgres://localhost/db",
		"JWT_SECRET":      "env-secret",
		"JWT_SECRET_FILE": secretFile,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("secret file did not win: %q", cfg.JWTSecret)
	}
}

func TestLoadMailFromFallsBackToUser(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/db",
		"EMAIL_USER":   "mailer@mgv.example",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MailFrom != "mailer@mgv.example" {
		t.Fatalf("unexpected mail from: %q", cfg.MailFrom)
	}
}

func TestLoadInvalidShutdownTimeout(t *testing.T) {
	if _, err := load([]string{"-shutdown-timeout", "soon"}, envMap(map[string]string{
		"DATABASE_URI": "postgres://localhost/db",
	})); err == nil {
		t.Fatal("expected error for unparsable timeout")
	}
}
