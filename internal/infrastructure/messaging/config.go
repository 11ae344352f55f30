package messaging

import "errors"

var (
	// ErrConfigMissingBaseURL indicates the messaging API base URL is not set
	ErrConfigMissingBaseURL = errors.New("messaging: API base URL is required")
	// ErrConfigMissingToken indicates the bot token is not set
	ErrConfigMissingToken = errors.New("messaging: bot token is required")
)

// Config holds the connection settings for the group-messaging platform.
// The platform is optional: an unconfigured adapter reports
// IsConfigured() == false and every orchestrator treats that as a
// benign skip, never an error.
type Config struct {
	// APIBaseURL is the root URL of the messaging gateway
	APIBaseURL string
	// BotToken authenticates the back office against the gateway
	BotToken string
	// TimeoutSeconds is the HTTP client timeout
	TimeoutSeconds int
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.BotToken == "" {
		return ErrConfigMissingToken
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
	return nil
}
