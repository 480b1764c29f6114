package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath             string
	GeminiAPIKey       string
	IconsEnabled       bool
	IconTimeoutSeconds int
	IconBuffer         int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		IconsEnabled:       true,
		IconTimeoutSeconds: 10,
		IconBuffer:         16,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("STARBOARD_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		cfg.GeminiAPIKey = v
	} else if v := strings.TrimSpace(os.Getenv("API_KEY")); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v, ok := getEnvBool("STARBOARD_ICONS"); ok {
		cfg.IconsEnabled = v
	}
	if v, ok := getEnvInt("STARBOARD_ICON_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.IconTimeoutSeconds = v
	}
	if v, ok := getEnvInt("STARBOARD_ICON_BUFFER"); ok && v > 0 {
		cfg.IconBuffer = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
