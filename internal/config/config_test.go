package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var configKeys = []string{
	"PORT", "DEBUG", "CORS_ALLOWED_ORIGINS", "STORE_BACKEND", "STATE_PATH", "STATE_KEY",
	"DATABASE_DSN", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "FIREBASE_PROJECT_ID",
	"GOOGLE_APPLICATION_CREDENTIALS",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Server.Debug {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	want := StoreConfig{
		Backend:   BackendFile,
		StatePath: "diet-tracker-state.json",
		StateKey:  "diet-tracker-state",
	}
	if cfg.Store != want {
		t.Errorf("store = %+v, want %+v", cfg.Store, want)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 0 {
		t.Errorf("unexpected redis config %+v", cfg.Redis)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" || !cfg.Server.Debug {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if !reflect.DeepEqual(cfg.Server.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Store.Backend != BackendRedis || cfg.Redis.Addr != "cache:6380" || cfg.Redis.DB != 3 {
		t.Errorf("unexpected redis selection %+v %+v", cfg.Store, cfg.Redis)
	}
}

func TestLoadSQLiteDefaultDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "sqlite")
	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.DatabaseDSN != "diet_tracker.db" {
		t.Fatalf("unexpected dsn %q", cfg.Store.DatabaseDSN)
	}
}

func TestLoadRejectsInvalidBackends(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORE_BACKEND": "mongo"}},
		{"postgres without dsn", map[string]string{"STORE_BACKEND": "postgres"}},
		{"firestore without project", map[string]string{"STORE_BACKEND": "firestore"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(missingEnvFile(t)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	for _, k := range []string{"STORE_BACKEND", "STATE_PATH"} {
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("Unsetenv: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "test.env")
	content := "STORE_BACKEND=memory\nSTATE_PATH=/tmp/ignored.json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("STORE_BACKEND")
		_ = os.Unsetenv("STATE_PATH")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Fatalf("expected backend from env file, got %q", cfg.Store.Backend)
	}
}
