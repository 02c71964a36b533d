package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slacknotify/pkg/domain"
)

// DefaultUserName is the sender name used when none is configured
const DefaultUserName = "SlackNotifier"

// Config represents the webhook settings. Empty strings mean "not set".
type Config struct {
	WebhookURL string `yaml:"webhook_url"`
	UserName   string `yaml:"username,omitempty"`
	Channel    string `yaml:"channel,omitempty"`
}

// NewConfig returns a config with default values
func NewConfig() *Config {
	return &Config{
		UserName: DefaultUserName,
	}
}

type ConfigOption func(*Config)

func WithUserName(name string) ConfigOption {
	return func(c *Config) {
		c.UserName = name
	}
}

func WithChannel(channel string) ConfigOption {
	return func(c *Config) {
		c.Channel = channel
	}
}

// Set assigns the webhook URL and optional fields. No validation is done here.
func (c *Config) Set(webhookURL string, opts ...ConfigOption) {
	c.WebhookURL = webhookURL
	for _, opt := range opts {
		opt(c)
	}
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.WebhookURL == "" {
		return goerr.Wrap(domain.ErrConfiguration, "webhook_url is required")
	}
	return nil
}

// Clone returns a copy of the config
func (c *Config) Clone() *Config {
	copied := *c
	return &copied
}
