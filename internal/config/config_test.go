// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv pins every mapped variable so the host environment cannot
// leak into a test.
func isolateEnv(t *testing.T) {
	t.Helper()

	for name := range envKeyMap {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("unset %s: %v", name, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORE_BACKEND", BackendMemory)

	c, err := load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if c.Store.Backend != BackendMemory {
		t.Errorf("backend = %q", c.Store.Backend)
	}
	if c.Store.LoginDelay != 600*time.Millisecond {
		t.Errorf("login delay = %v", c.Store.LoginDelay)
	}
	if c.Notify.SubscriptionDelay != 1500*time.Millisecond {
		t.Errorf("subscription delay = %v", c.Notify.SubscriptionDelay)
	}
	if c.Reminder.Lead != 10*time.Minute {
		t.Errorf("reminder lead = %v", c.Reminder.Lead)
	}
	if c.Coach.Enabled {
		t.Error("coach enabled by default")
	}
	if c.Server.Address() != "0.0.0.0:8080" {
		t.Errorf("address = %q", c.Server.Address())
	}
	if c.IsProduction() {
		t.Error("default environment is production")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORE_BACKEND", BackendRedis)
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ADMIN_EMAIL", "boss@example.com")
	t.Setenv("COACH_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "9090")

	c, err := load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if c.Store.AdminEmail != "boss@example.com" {
		t.Errorf("admin email = %q", c.Store.AdminEmail)
	}
	if !c.Coach.Enabled || c.Coach.APIKey != "test-key" {
		t.Errorf("coach = %+v", c.Coach)
	}
	if c.Server.Port != 9090 {
		t.Errorf("port = %d", c.Server.Port)
	}
}

func TestLoadFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
store:
  backend: memory
  admin_email: owner@example.com
  login_delay: 0s
reminder:
  enabled: false
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if c.Store.AdminEmail != "owner@example.com" {
		t.Errorf("admin email = %q", c.Store.AdminEmail)
	}
	if c.Store.LoginDelay != 0 {
		t.Errorf("login delay = %v", c.Store.LoginDelay)
	}
	if c.Reminder.Enabled {
		t.Error("reminder still enabled")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "redis backend without url",
			env:     map[string]string{"STORE_BACKEND": BackendRedis},
			wantErr: "REDIS_URL",
		},
		{
			name:    "postgres backend without url",
			env:     map[string]string{"STORE_BACKEND": BackendPostgres},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "unknown backend",
			env:     map[string]string{"STORE_BACKEND": "sqlite"},
			wantErr: "unknown store backend",
		},
		{
			name: "redis notifier without url",
			env: map[string]string{
				"STORE_BACKEND":  BackendMemory,
				"NOTIFY_BACKEND": "redis",
			},
			wantErr: "redis notifier",
		},
		{
			name: "coach without key",
			env: map[string]string{
				"STORE_BACKEND": BackendMemory,
				"COACH_ENABLED": "true",
			},
			wantErr: "GEMINI_API_KEY",
		},
		{
			name: "production without signing key",
			env: map[string]string{
				"STORE_BACKEND": BackendMemory,
				"ENVIRONMENT":   "production",
			},
			wantErr: "JWT_PRIVATE_KEY_PATH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load("")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
