package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "slacknotify",
		Usage:   "Post notifications to a Slack incoming webhook",
		Version: "0.1.0",
		Description: `slacknotify sends a message to a Slack incoming webhook.

The webhook URL is read from --webhook-url, SLACK_WEBHOOK_URL or the
config file (~/.config/slacknotify/config.yml by default).`,
		Flags:  flags,
		Before: setupLogger,
		Commands: []*cli.Command{
			NewSendCommand(),
			NewConfigCommand(),
		},
	}
}

func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	return ctxlog.With(ctx, logger), nil
}
