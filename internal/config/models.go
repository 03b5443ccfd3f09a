package config

// ScanConfig represents the configuration for mailbox scanning
type ScanConfig struct {
	Source    string
	MaxEmails int
	PageSize  int64
	InputFile string
}

// GmailConfig represents the configuration for the Gmail source
type GmailConfig struct {
	AccessToken string
}

// PricingConfig represents the configuration for the allowance engine
type PricingConfig struct {
	FreeClearLimit  int64
	ScanLimitPerDay int64
	ProIdentities   []string
	UpgradeURL      string
}

// CounterConfig represents the configuration for the counter store
type CounterConfig struct {
	Type       string
	SQLitePath string
	MySQLDSN   string
}

// RoastConfig represents the configuration for roast generation
type RoastConfig struct {
	Enabled  bool
	Provider string
	Severity string
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region    string
	ModelID   string
	MaxTokens int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey    string
	ModelName string
	MaxTokens int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey    string
	ModelName string
	MaxTokens int
}

// SinkConfig represents the configuration for the SMTP mail sink
type SinkConfig struct {
	ListenAddress string
	Domain        string
	MaxMessages   int
}

// GetScan returns the scan configuration
func (c *Config) GetScan() ScanConfig {
	return ScanConfig{
		Source:    c.GetString("scan.source"),
		MaxEmails: c.GetInt("scan.max_emails"),
		PageSize:  c.GetInt64("scan.page_size"),
		InputFile: c.GetString("scan.input_file"),
	}
}

// GetGmail returns the Gmail configuration
func (c *Config) GetGmail() GmailConfig {
	return GmailConfig{
		AccessToken: c.GetString("gmail.access_token"),
	}
}

// GetPricing returns the pricing configuration
func (c *Config) GetPricing() PricingConfig {
	return PricingConfig{
		FreeClearLimit:  c.GetInt64("pricing.free_clear_limit"),
		ScanLimitPerDay: c.GetInt64("pricing.scan_limit_per_day"),
		ProIdentities:   c.GetStringSlice("pricing.pro_identities"),
		UpgradeURL:      c.GetString("pricing.upgrade_url"),
	}
}

// GetCounter returns the counter store configuration
func (c *Config) GetCounter() CounterConfig {
	return CounterConfig{
		Type:       c.GetString("counter.type"),
		SQLitePath: c.GetString("counter.sqlite_path"),
		MySQLDSN:   c.GetString("counter.mysql_dsn"),
	}
}

// GetRoast returns the roast configuration
func (c *Config) GetRoast() RoastConfig {
	return RoastConfig{
		Enabled:  c.GetBool("roast.enabled"),
		Provider: c.GetString("roast.provider"),
		Severity: c.GetString("roast.severity"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:    c.GetString("bedrock.region"),
		ModelID:   c.GetString("bedrock.model_id"),
		MaxTokens: c.GetInt("bedrock.max_tokens"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:    c.GetString("gemini.api_key"),
		ModelName: c.GetString("gemini.model_name"),
		MaxTokens: c.GetInt("gemini.max_tokens"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:    c.GetString("openai.api_key"),
		ModelName: c.GetString("openai.model_name"),
		MaxTokens: c.GetInt("openai.max_tokens"),
	}
}

// GetSink returns the mail sink configuration
func (c *Config) GetSink() SinkConfig {
	return SinkConfig{
		ListenAddress: c.GetString("sink.listen_address"),
		Domain:        c.GetString("sink.domain"),
		MaxMessages:   c.GetInt("sink.max_messages"),
	}
}
