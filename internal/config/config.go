package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// devSessionSecret keeps local runs working without a .env file. Never use it in production.
const devSessionSecret = "folio-dev-session-secret-change-me"

// Provider is the read-only view of configuration handed to the rest of the app.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentFile() string
	GetContentWatch() bool
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetContactInbox() string
	GetMetricsEnabled() bool
	GetTracingEnabled() bool
	GetTracingZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr             string
	AppBaseURL       string
	SessionSecret    string
	ContentFile      string
	ContentWatch     bool
	EmailProvider    string
	EmailAPIKey      string
	EmailSender      string
	ContactInbox     string
	MetricsEnabled   bool
	TracingEnabled   bool
	TracingZipkinURL string
}

var _ Provider = (*Config)(nil)

// New loads a .env file if present and then reads configuration from the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment only, applying defaults.
func FromEnv() *Config {
	cfg := &Config{
		Addr:             getenv("APP_ADDR", ":8080"),
		AppBaseURL:       getenv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		ContentFile:      os.Getenv("CONTENT_FILE"),
		ContentWatch:     getbool("CONTENT_WATCH", false),
		EmailProvider:    getenv("EMAIL_PROVIDER", "log"),
		EmailAPIKey:      os.Getenv("EMAIL_API_KEY"),
		EmailSender:      os.Getenv("EMAIL_SENDER"),
		ContactInbox:     os.Getenv("CONTACT_INBOX"),
		MetricsEnabled:   getbool("METRICS_ENABLED", true),
		TracingEnabled:   getbool("TRACING_ENABLED", false),
		TracingZipkinURL: getenv("TRACING_ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
	}

	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set, using an insecure development secret")
		cfg.SessionSecret = devSessionSecret
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring malformed boolean", "key", key, "value", v)
		return fallback
	}
	return b
}

func (c *Config) GetAddr() string             { return c.Addr }
func (c *Config) GetAppBaseURL() string       { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string    { return c.SessionSecret }
func (c *Config) GetContentFile() string      { return c.ContentFile }
func (c *Config) GetContentWatch() bool       { return c.ContentWatch }
func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string      { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string      { return c.EmailSender }
func (c *Config) GetContactInbox() string     { return c.ContactInbox }
func (c *Config) GetMetricsEnabled() bool     { return c.MetricsEnabled }
func (c *Config) GetTracingEnabled() bool     { return c.TracingEnabled }
func (c *Config) GetTracingZipkinURL() string { return c.TracingZipkinURL }
