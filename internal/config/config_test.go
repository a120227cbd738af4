package config_test

import (
	"os"
	"strings"
	"testing"

	"github.com/msomdec/tasklist/internal/config"
)

const validSecret = "0123456789abcdef0123456789abcdef"

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", validSecret)
	unsetenv(t, "PORT")
	unsetenv(t, "DATABASE_PATH")
	unsetenv(t, "BCRYPT_COST")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.DatabasePath != "todo_list.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.Addr() != ":5000" {
		t.Fatalf("expected addr :5000, got %q", cfg.Addr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", validSecret)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_PATH", "/tmp/tasks.db")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DatabasePath != "/tmp/tasks.db" || cfg.BcryptCost != 4 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	unsetenv(t, "JWT_SECRET")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")
	unsetenv(t, "BCRYPT_COST")
	unsetenv(t, "PORT")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET length error, got %v", err)
	}
}

func TestValidate_BcryptCostRange(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{"too low", 3, true},
		{"lowest", 4, false},
		{"highest", 14, false},
		{"too high", 15, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Config{Port: "5000", JWTSecret: validSecret, BcryptCost: tc.cost}
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("cost %d: expected error=%v, got %v", tc.cost, tc.wantErr, err)
			}
		})
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	t.Setenv("JWT_SECRET", validSecret)
	t.Setenv("BCRYPT_COST", "abc")
	unsetenv(t, "PORT")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-numeric BCRYPT_COST")
	}
}
