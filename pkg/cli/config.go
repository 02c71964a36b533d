package cli

import (
	"github.com/m-mizutani/slacknotify/pkg/domain/interfaces"
	"github.com/m-mizutani/slacknotify/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Config holds connection settings given on the command line
type Config struct {
	ConfigPath string
	WebhookURL string
}

func NewConfig(cmd *cli.Command) *Config {
	return &Config{
		ConfigPath: cmd.String("config"),
		WebhookURL: cmd.String("webhook-url"),
	}
}

// Resolve loads the config file and applies command line overrides
func (c *Config) Resolve(service interfaces.ConfigService) (*model.Config, error) {
	var (
		config *model.Config
		err    error
	)
	if c.ConfigPath != "" {
		config, err = service.Load(c.ConfigPath)
	} else {
		config, err = service.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	if c.WebhookURL != "" {
		config.WebhookURL = c.WebhookURL
	}

	return config, nil
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "webhook-url",
			Aliases: []string{"w"},
			Usage:   "Slack incoming webhook URL",
			Sources: cli.EnvVars("SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to config file",
		},
	}
}
