package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile      = ".env"
	defaultPort         = "8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 120 * time.Second

	defaultStoreBackend = "file"
	defaultStorePath    = "storefront.db.json"
	defaultRedisAddr    = "localhost:6379"
	defaultKeyPrefix    = "ecustomers"

	defaultCatalogSeedFile = "assets/data/products.seed.json"

	defaultShippingFee    = 15000
	defaultWhatsAppNumber = "6281234567890"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StoreConfig selects and parameterises the key-value store backend.
type StoreConfig struct {
	// Backend is one of "memory", "file" or "redis".
	Backend   string
	FilePath  string
	RedisAddr string
	RedisDB   int
	KeyPrefix string
}

// CatalogConfig points at the product catalog source. URL wins over the
// seed file when both are set.
type CatalogConfig struct {
	SeedFile string
	URL      string
}

// CheckoutConfig carries the simulated checkout parameters.
type CheckoutConfig struct {
	// ShippingFee is the flat fee added to every order total.
	ShippingFee int64
	// WhatsAppNumber receives the generated order message.
	WhatsAppNumber string
}

// ValidationError reports configuration fields that failed validation.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid or missing fields: %s", strings.Join(e.fields, ", "))
}

// Fields lists the offending field names.
func (e *ValidationError) Fields() []string {
	return append([]string(nil), e.fields...)
}

// Load builds the configuration from the process environment, with values
// from an optional .env file (ENV_FILE, default ".env") filling in unset
// variables.
func Load() (Config, error) {
	envFile := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if envFile == "" {
		envFile = defaultEnvFile
	}
	fileValues, err := loadDotEnv(envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), true
		}
		if value, ok := fileValues[key]; ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), true
		}
		return "", false
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         stringWithDefault(lookup, "PORT", defaultPort),
			ReadTimeout:  durationWithDefault(lookup, "SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Store: StoreConfig{
			Backend:   strings.ToLower(stringWithDefault(lookup, "STORE_BACKEND", defaultStoreBackend)),
			FilePath:  stringWithDefault(lookup, "STORE_FILE", defaultStorePath),
			RedisAddr: stringWithDefault(lookup, "REDIS_ADDR", defaultRedisAddr),
			RedisDB:   intWithDefault(lookup, "REDIS_DB", 0),
			KeyPrefix: stringWithDefault(lookup, "STORE_KEY_PREFIX", defaultKeyPrefix),
		},
		Catalog: CatalogConfig{
			SeedFile: stringWithDefault(lookup, "CATALOG_SEED_FILE", defaultCatalogSeedFile),
			URL:      stringWithDefault(lookup, "CATALOG_URL", ""),
		},
		Checkout: CheckoutConfig{
			ShippingFee:    int64(intWithDefault(lookup, "SHIPPING_FEE", defaultShippingFee)),
			WhatsAppNumber: stringWithDefault(lookup, "WHATSAPP_NUMBER", defaultWhatsAppNumber),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var invalid []string

	if cfg.Server.Port == "" {
		invalid = append(invalid, "Server.Port")
	}
	switch cfg.Store.Backend {
	case "memory", "file", "redis":
	default:
		invalid = append(invalid, "Store.Backend")
	}
	if cfg.Store.Backend == "file" && strings.TrimSpace(cfg.Store.FilePath) == "" {
		invalid = append(invalid, "Store.FilePath")
	}
	if cfg.Store.Backend == "redis" && strings.TrimSpace(cfg.Store.RedisAddr) == "" {
		invalid = append(invalid, "Store.RedisAddr")
	}
	if cfg.Checkout.ShippingFee < 0 {
		invalid = append(invalid, "Checkout.ShippingFee")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		value = strings.Trim(value, "\"'")
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
