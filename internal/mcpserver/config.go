package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds the MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInlineSize caps inline contract content in bytes.
	MaxInlineSize int64
	// ChangeLimit caps the number of changes returned by one diff call.
	ChangeLimit int
	// ValidateInputs runs OpenAPI validation on both contracts.
	ValidateInputs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CONTRACTDIFF_MCP_* environment variables.
// Invalid values log a warning and fall back to the default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInlineSize:  int64(envInt("CONTRACTDIFF_MCP_MAX_INLINE_SIZE", 10*1024*1024)),
		ChangeLimit:    envInt("CONTRACTDIFF_MCP_CHANGE_LIMIT", 200),
		ValidateInputs: envBool("CONTRACTDIFF_MCP_VALIDATE", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
