package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/clearbox/")
	v.AddConfigPath("$HOME/.clearbox")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("CLEARBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Scan defaults
	v.SetDefault("scan.source", "gmail")
	v.SetDefault("scan.max_emails", 1000)
	v.SetDefault("scan.page_size", 100)
	v.SetDefault("scan.input_file", "")

	// Gmail defaults
	v.SetDefault("gmail.access_token", "")

	// Pricing defaults
	v.SetDefault("pricing.free_clear_limit", 10000)
	v.SetDefault("pricing.scan_limit_per_day", 20)
	v.SetDefault("pricing.pro_identities", []string{})
	v.SetDefault("pricing.upgrade_url", "")

	// Counter store defaults; absence of an external store falls back to
	// local, non-durable counting
	v.SetDefault("counter.type", "memory")
	v.SetDefault("counter.sqlite_path", "/data/clearbox_counters.db")
	v.SetDefault("counter.mysql_dsn", "user:password@tcp(localhost:3306)/clearbox")

	// Roast defaults
	v.SetDefault("roast.enabled", false)
	v.SetDefault("roast.provider", "bedrock")
	v.SetDefault("roast.severity", "medium")

	// Bedrock defaults
	v.SetDefault("bedrock.region", "us-east-1")
	v.SetDefault("bedrock.model_id", "anthropic.claude-3-5-haiku-20241022-v1:0")
	v.SetDefault("bedrock.max_tokens", 300)

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model_name", "gemini-1.5-flash")
	v.SetDefault("gemini.max_tokens", 300)

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model_name", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 300)

	// Mail sink defaults
	v.SetDefault("sink.listen_address", "0.0.0.0:2525")
	v.SetDefault("sink.domain", "localhost")
	v.SetDefault("sink.max_messages", 1000)
	v.SetDefault("sink.report_identity", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetInt64 gets a 64-bit integer value from the configuration
func (c *Config) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
