package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PROCWATCH_MODE", "HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
		"PROC_ROOT", "PROCESS_LIMIT", "EVICT_STALE_PIDS", "JWT_SECRET", "JWT_EXPIRY",
		"ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Mode != ModeTop {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeTop)
	}
	if cfg.Address != ":3000" {
		t.Errorf("Address = %q, want %q", cfg.Address, ":3000")
	}
	if cfg.ProcRoot != "/proc" {
		t.Errorf("ProcRoot = %q, want /proc", cfg.ProcRoot)
	}
	if cfg.ProcessLimit != 10 {
		t.Errorf("ProcessLimit = %d, want 10", cfg.ProcessLimit)
	}
	if cfg.EvictStalePIDs {
		t.Error("EvictStalePIDs should default to false")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil", cfg.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PROCWATCH_MODE", ModeServe)
	t.Setenv("PROC_ROOT", "/host/proc")
	t.Setenv("PROCESS_LIMIT", "25")
	t.Setenv("EVICT_STALE_PIDS", "true")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()

	if cfg.Mode != ModeServe {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeServe)
	}
	if cfg.ProcRoot != "/host/proc" {
		t.Errorf("ProcRoot = %q", cfg.ProcRoot)
	}
	if cfg.ProcessLimit != 25 {
		t.Errorf("ProcessLimit = %d, want 25", cfg.ProcessLimit)
	}
	if !cfg.EvictStalePIDs {
		t.Error("EvictStalePIDs should be true")
	}
	if cfg.JWTExpiry != 90*time.Minute {
		t.Errorf("JWTExpiry = %v, want 90m", cfg.JWTExpiry)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PROCESS_LIMIT", "-3")
	t.Setenv("EVICT_STALE_PIDS", "maybe")
	t.Setenv("JWT_EXPIRY", "soon")

	cfg := Load()

	if cfg.ProcessLimit != 10 {
		t.Errorf("ProcessLimit = %d, want 10", cfg.ProcessLimit)
	}
	if cfg.EvictStalePIDs {
		t.Error("EvictStalePIDs should fall back to false")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
}

func TestApplyArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args keeps mode", nil, ModeTop},
		{"serve", []string{"serve"}, ModeServe},
		{"snapshot", []string{"snapshot", "extra"}, ModeSnapshot},
		{"unknown ignored", []string{"bogus"}, ModeTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Mode: ModeTop}
			cfg.ApplyArgs(tt.args)
			if cfg.Mode != tt.want {
				t.Errorf("Mode = %q, want %q", cfg.Mode, tt.want)
			}
		})
	}
}
