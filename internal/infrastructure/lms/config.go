package lms

import "errors"

var (
	// ErrConfigMissingBaseURL indicates the LMS base URL is not set
	ErrConfigMissingBaseURL = errors.New("lms: base URL is required")
	// ErrConfigMissingToken indicates the web-service token is not set
	ErrConfigMissingToken = errors.New("lms: web service token is required")
)

// Config holds the connection settings for the LMS web-service API
type Config struct {
	// BaseURL is the root URL of the LMS instance (e.g. https://campus.example.com)
	BaseURL string
	// Token is the web-service token used for every call
	Token string
	// TimeoutSeconds is the HTTP client timeout
	TimeoutSeconds int
	// DefaultCategoryID is the remote category new courses are created under
	DefaultCategoryID int
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.Token == "" {
		return ErrConfigMissingToken
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.DefaultCategoryID <= 0 {
		c.DefaultCategoryID = 1
	}
	return nil
}
