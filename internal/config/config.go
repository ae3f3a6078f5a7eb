// Package config loads settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Mode    string
	Address string

	LogLevel  string
	LogFormat string
	LogFile   string

	ProcRoot      string
	PasswdPath    string
	OSReleasePath string

	ProcessLimit   int
	EvictStalePIDs bool

	JWTSecret         string
	JWTExpiry         time.Duration
	AdminUsername     string
	AdminPasswordHash string
	AllowedOrigins    []string
}

const (
	ModeTop      = "top"
	ModeServe    = "serve"
	ModeSnapshot = "snapshot"
)

func Load() *Config {
	godotenv.Load()

	return &Config{
		Mode:    getEnv("PROCWATCH_MODE", ModeTop),
		Address: getEnv("HTTP_ADDR", ":3000"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		LogFile:   os.Getenv("LOG_FILE"),

		ProcRoot:      getEnv("PROC_ROOT", "/proc"),
		PasswdPath:    getEnv("PASSWD_PATH", "/etc/passwd"),
		OSReleasePath: getEnv("OS_RELEASE_PATH", "/etc/os-release"),

		ProcessLimit:   getEnvInt("PROCESS_LIMIT", 10),
		EvictStalePIDs: getEnvBool("EVICT_STALE_PIDS", false),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTExpiry:         getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS"),
	}
}

// ApplyArgs lets the first command line argument select the mode.
func (c *Config) ApplyArgs(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case ModeTop, ModeServe, ModeSnapshot:
		c.Mode = args[0]
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
