package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
// It is loaded once at process startup and passed into constructors
// explicitly; there is no global mutable configuration.
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// BitrixDomain is the portal host the REST calls go to, e.g. "example.bitrix24.com".
	BitrixDomain string

	// OAuth application credentials. Carried for the registration flow;
	// the bridge itself authenticates with per-event access tokens.
	BitrixClientID     string
	BitrixClientSecret string

	// EventHandlerURL is the public base URL Bitrix24 delivers events to.
	// May include a legacy /b24-hook.php or /bot/... suffix; registration strips it.
	EventHandlerURL string

	// BotCode is the CODE field used on imbot.register.
	BotCode string

	DispatchTimeout   time.Duration
	DispatchWorkers   int
	DispatchQueueSize int

	// TLSInsecureSkipVerify disables certificate verification on outbound
	// REST calls. Defaults to false; only meant for development portals
	// with self-signed certificates.
	TLSInsecureSkipVerify bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:          getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:             getEnv("LOG_DIR", DefaultLogDir),
		Environment:        getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:        getEnv("SERVICE_NAME", DefaultServiceName),
		Version:            getEnv("VERSION", DefaultVersion),
		BitrixDomain:       getEnv("BITRIX_DOMAIN", ""),
		BitrixClientID:     getEnv("BITRIX_CLIENT_ID", ""),
		BitrixClientSecret: getEnv("BITRIX_CLIENT_SECRET", ""),
		EventHandlerURL:    getEnv("BITRIX_EVENT_HANDLER", ""),
		BotCode:            getEnv("BITRIX_BOT_CODE", DefaultBotCode),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	timeout, err := getEnvDuration("DISPATCH_TIMEOUT", DefaultDispatchTimeout)
	if err != nil {
		return nil, err
	}
	cfg.DispatchTimeout = timeout

	workers, err := getEnvInt("DISPATCH_WORKERS", DefaultDispatchWorkers)
	if err != nil {
		return nil, err
	}
	cfg.DispatchWorkers = workers

	queueSize, err := getEnvInt("DISPATCH_QUEUE_SIZE", DefaultDispatchQueueSize)
	if err != nil {
		return nil, err
	}
	cfg.DispatchQueueSize = queueSize

	insecure, err := getEnvBool("TLS_INSECURE_SKIP_VERIFY", false)
	if err != nil {
		return nil, err
	}
	cfg.TLSInsecureSkipVerify = insecure

	// The portal domain is the one setting nothing works without
	if cfg.BitrixDomain == "" {
		return nil, fmt.Errorf("BITRIX_DOMAIN environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// RestBaseURL returns the portal's REST endpoint root.
func (c *Config) RestBaseURL() string {
	return fmt.Sprintf("https://%s/rest", c.BitrixDomain)
}
