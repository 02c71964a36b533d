package usecase

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slacknotify/pkg/domain"
	"github.com/m-mizutani/slacknotify/pkg/domain/interfaces"
	"github.com/m-mizutani/slacknotify/pkg/domain/model"
	"go.yaml.in/yaml/v3"
)

const configTemplate = `# slacknotify configuration
#
# The webhook URL is a secret. Environment variables such as
# ${SLACK_WEBHOOK_URL} are expanded when the file is loaded.
webhook_url: ${SLACK_WEBHOOK_URL}

# Sender name shown in Slack (only works if webhook allows customization)
username: %s

# Default channel. Leave empty to post to the webhook's own channel.
# channel: "#general"
`

type configService struct {
	homeDir string
}

// NewConfigService creates a new ConfigService instance
func NewConfigService() interfaces.ConfigService {
	homeDir, _ := os.UserHomeDir()
	return &configService{homeDir: homeDir}
}

// GetDefaultPath returns ~/.config/slacknotify/config.yml
func (c *configService) GetDefaultPath() string {
	return filepath.Join(c.homeDir, ".config", "slacknotify", "config.yml")
}

// Load reads a YAML config file over the default values
func (c *configService) Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is chosen by the user
	if err != nil {
		return nil, goerr.Wrap(domain.ErrConfiguration, "failed to read config file",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	config := model.NewConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, goerr.Wrap(domain.ErrConfiguration, "failed to parse config file",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	config.WebhookURL = expandEnvVars(config.WebhookURL)
	config.Channel = expandEnvVars(config.Channel)

	return config, nil
}

// LoadDefault loads the default config file, or returns defaults if it is absent
func (c *configService) LoadDefault() (*model.Config, error) {
	path := c.GetDefaultPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return model.NewConfig(), nil
	}
	return c.Load(path)
}

// GenerateTemplate returns a commented config file
func (c *configService) GenerateTemplate() string {
	return fmt.Sprintf(configTemplate, model.DefaultUserName)
}

// SaveTemplate writes the template to path. Existing files are kept unless force is set.
func (c *configService) SaveTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return goerr.Wrap(domain.ErrConfiguration, "config file already exists, use --force to overwrite",
				goerr.V("path", path))
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	if err := os.WriteFile(path, []byte(c.GenerateTemplate()), 0600); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	return nil
}

// expandEnvVars expands environment variables in the string
func expandEnvVars(s string) string {
	// Support both ${VAR} and $VAR formats
	return os.ExpandEnv(s)
}
