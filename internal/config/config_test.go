package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func setServerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ADMIN_PASSWORD", "letmein")
	t.Setenv("SESSION_SECRET", strings.Repeat("s", 32))
}

var optionalKeys = []string{
	"PORT", "ENVIRONMENT", "SESSION_TTL", "RSVP_RATE_LIMIT", "MAX_UPLOAD_BYTES", "TRUST_PROXY_HEADERS",
	"PUBLIC_BASE_URL", "BRIDE_NAME", "GROOM_NAME", "WEDDING_DATE", "WEDDING_VENUE",
}

// unsetEnv removes key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

// readWith clears the optional keys so their defaults apply, then loads
func readWith(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	for _, key := range optionalKeys {
		unsetEnv(t, key)
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	setServerEnv(t)
	cfg, err := readWith(t, nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Environment != "development" {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.RSVPRateLimit != 2 || cfg.MaxUploadBytes != 5<<20 {
		t.Errorf("unexpected limits: rate %v upload %d", cfg.RSVPRateLimit, cfg.MaxUploadBytes)
	}
	if cfg.TrustProxyHeaders {
		t.Error("proxy headers must not be trusted by default")
	}
	if cfg.PublicBaseURL != "http://localhost:3000" {
		t.Errorf("unexpected public base url %q", cfg.PublicBaseURL)
	}
	if cfg.Wedding.BrideName != "Bride" || cfg.Wedding.GroomName != "Groom" || cfg.Wedding.Date != "" {
		t.Errorf("unexpected wedding defaults: %+v", cfg.Wedding)
	}
	if cfg.IsProduction() {
		t.Error("development must not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setServerEnv(t)
	cfg, err := readWith(t, map[string]string{
		"PORT":                "9000",
		"ENVIRONMENT":         "production",
		"SESSION_TTL":         "90m",
		"RSVP_RATE_LIMIT":     "0.5",
		"MAX_UPLOAD_BYTES":    "1024",
		"TRUST_PROXY_HEADERS": "true",
		"STORE_DRIVER":        "SUPABASE",
		"SUPABASE_URL":        "https://project.supabase.co",
		"SUPABASE_ANON_KEY":   "anon",
		"BRIDE_NAME":          "Layla",
		"WEDDING_DATE":        "2027-05-01",
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" || !cfg.IsProduction() {
		t.Errorf("unexpected server settings: %+v", cfg)
	}
	if cfg.SessionTTL != 90*time.Minute || cfg.RSVPRateLimit != 0.5 || cfg.MaxUploadBytes != 1024 {
		t.Errorf("unexpected parsed values: %+v", cfg)
	}
	if !cfg.TrustProxyHeaders {
		t.Error("expected TRUST_PROXY_HEADERS=true to be honored")
	}
	if cfg.StoreDriver != DriverSupabase {
		t.Errorf("expected driver to be lower-cased, got %q", cfg.StoreDriver)
	}
	if cfg.Wedding.BrideName != "Layla" || cfg.Wedding.Date != "2027-05-01" {
		t.Errorf("unexpected wedding: %+v", cfg.Wedding)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing password", map[string]string{"ADMIN_PASSWORD": ""}, "ADMIN_PASSWORD"},
		{"short secret", map[string]string{"SESSION_SECRET": "short"}, "at least 32"},
		{"bad ttl", map[string]string{"SESSION_TTL": "a day"}, "SESSION_TTL"},
		{"bad rate", map[string]string{"RSVP_RATE_LIMIT": "fast"}, "RSVP_RATE_LIMIT"},
		{"zero rate", map[string]string{"RSVP_RATE_LIMIT": "0"}, "RSVP_RATE_LIMIT"},
		{"bad proxy flag", map[string]string{"TRUST_PROXY_HEADERS": "sometimes"}, "TRUST_PROXY_HEADERS"},
		{"bad upload", map[string]string{"MAX_UPLOAD_BYTES": "-1"}, "MAX_UPLOAD_BYTES"},
		{"unknown driver", map[string]string{"STORE_DRIVER": "mongo"}, "STORE_DRIVER"},
		{"supabase without key", map[string]string{"STORE_DRIVER": "supabase", "SUPABASE_URL": "https://x", "SUPABASE_ANON_KEY": ""}, "SUPABASE_ANON_KEY"},
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": ""}, "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setServerEnv(t)
			_, err := readWith(t, tt.env)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadStore_SkipsServerSettings(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := LoadStore()
	if err != nil {
		t.Fatalf("LoadStore returned error: %v", err)
	}
	if cfg.StoreDriver != DriverMemory {
		t.Errorf("unexpected driver %q", cfg.StoreDriver)
	}

	if _, err := Load(); err == nil {
		t.Error("Load should still require the admin settings")
	}
}
