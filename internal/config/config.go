// Package config loads service settings from defaults, an optional YAML file
// and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSessionStore = errors.New("session store must be memory or redis")
	ErrMissingRedisAddr    = errors.New("redis address required for redis session store")
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	HTTPPort           string        `yaml:"http_port"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	MaxRequestBodySize int64         `yaml:"max_request_body_size"`

	DBPath string `yaml:"db_path"`

	SessionStore  string        `yaml:"session_store"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`

	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`

	Messaging MessagingConfig `yaml:"messaging"`
	Payment   PaymentConfig   `yaml:"payment"`
	Display   DisplayConfig   `yaml:"display"`
	Gallery   GalleryConfig   `yaml:"gallery"`

	LogLevel string `yaml:"log_level"`
	Dev      bool   `yaml:"dev"`
}

type MessagingConfig struct {
	Domain    string `yaml:"domain"`
	Recipient string `yaml:"recipient"`
}

type PaymentConfig struct {
	Address  string `yaml:"address"`
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
	QRSize   int    `yaml:"qr_size"`
}

type DisplayConfig struct {
	Multiplier string `yaml:"multiplier"`
	Symbol     string `yaml:"symbol"`
}

type GalleryConfig struct {
	DoubleTapWindow      time.Duration `yaml:"double_tap_window"`
	ResetZoomOnClose     bool          `yaml:"reset_zoom_on_close"`
	ResetWishlistOnClose bool          `yaml:"reset_wishlist_on_close"`
}

func Default() *Config {
	return &Config{
		HTTPPort:           "8080",
		RequestTimeout:     30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 1 << 20, // 1MB
		DBPath:             "catalog.db",
		SessionStore:       SessionStoreMemory,
		SessionTTL:         24 * time.Hour,
		KafkaTopic:         "storefront-events",
		Messaging: MessagingConfig{
			Domain:    "wa.me",
			Recipient: "1234567890",
		},
		Payment: PaymentConfig{
			Address:  "preservespecialmoments@upi",
			Name:     "Preserve Special Moments",
			Currency: "INR",
			QRSize:   256,
		},
		Display: DisplayConfig{
			Multiplier: "83",
			Symbol:     "₹",
		},
		Gallery: GalleryConfig{
			DoubleTapWindow: 300 * time.Millisecond,
		},
		LogLevel: "info",
	}
}

// Load reads path (if non-empty) over the defaults, then applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.HTTPPort = getEnv("HTTP_PORT", c.HTTPPort)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.SessionStore = getEnv("SESSION_STORE", c.SessionStore)
	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)
	c.KafkaTopic = getEnv("KAFKA_TOPIC", c.KafkaTopic)
	c.Messaging.Domain = getEnv("MESSAGING_DOMAIN", c.Messaging.Domain)
	c.Messaging.Recipient = getEnv("MESSAGING_RECIPIENT", c.Messaging.Recipient)
	c.Payment.Address = getEnv("PAYMENT_ADDRESS", c.Payment.Address)
	c.Payment.Name = getEnv("PAYMENT_NAME", c.Payment.Name)
	c.Payment.Currency = getEnv("PAYMENT_CURRENCY", c.Payment.Currency)
	c.Display.Multiplier = getEnv("DISPLAY_MULTIPLIER", c.Display.Multiplier)
	c.Display.Symbol = getEnv("DISPLAY_SYMBOL", c.Display.Symbol)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		c.KafkaBrokers = strings.Split(brokers, ",")
	}

	var err error
	if c.SessionTTL, err = getEnvDuration("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}
	if c.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", c.RequestTimeout); err != nil {
		return err
	}
	if c.Dev, err = getEnvBool("DEV", c.Dev); err != nil {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.SessionStore {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.RedisAddr == "" {
			return ErrMissingRedisAddr
		}
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidSessionStore, c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}
