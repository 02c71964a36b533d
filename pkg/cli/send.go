package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slacknotify/pkg/domain"
	"github.com/m-mizutani/slacknotify/pkg/domain/interfaces"
	"github.com/m-mizutani/slacknotify/pkg/domain/model"
	"github.com/m-mizutani/slacknotify/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// NewSendCommand creates the send command
func NewSendCommand() *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "Send a message",
		ArgsUsage: "TEXT...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "Message kind: success, error, warning or info",
			},
			&cli.StringSliceFlag{
				Name:  "field",
				Usage: "Attachment field as title=value (requires --kind)",
			},
			&cli.StringSliceFlag{
				Name:  "short-field",
				Usage: "Short attachment field as title=value (requires --kind)",
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Override sender name",
			},
			&cli.StringFlag{
				Name:  "channel",
				Usage: "Override channel",
			},
			&cli.StringFlag{
				Name:  "icon-emoji",
				Usage: "Icon emoji such as :robot_face:",
			},
		},
		Action: sendAction,
	}
}

// SendRequest is a parsed send command
type SendRequest struct {
	Text    string
	Kind    model.Kind
	Fields  []model.Field
	Options model.NotifyOptions
}

// NewSendRequest validates send command input
func NewSendRequest(args []string, kind string, fields, shortFields []string, opts model.NotifyOptions) (*SendRequest, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return nil, goerr.Wrap(domain.ErrInvalidArgument, "message text is required")
	}

	req := &SendRequest{
		Text:    text,
		Options: opts,
	}

	if kind != "" {
		k, err := model.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		req.Kind = k
	}

	long, err := ParseFields(fields, false)
	if err != nil {
		return nil, err
	}
	short, err := ParseFields(shortFields, true)
	if err != nil {
		return nil, err
	}
	req.Fields = append(long, short...)

	if req.Kind == "" && len(req.Fields) > 0 {
		return nil, goerr.Wrap(domain.ErrInvalidArgument, "fields require --kind")
	}

	return req, nil
}

// Execute sends the request with client. A kind turns the text into a
// formatted message whose attachment carries the fields.
func (r *SendRequest) Execute(ctx context.Context, client interfaces.Notifier) *model.SendResult {
	if r.Kind == "" {
		return client.Send(ctx, r.Text, r.Options)
	}

	msg := model.NewMessage(r.Kind, r.Text, r.Fields...)
	opts := r.Options
	opts.Attachments = msg.Attachments()
	return client.Send(ctx, msg.DisplayText(), opts)
}

func sendAction(ctx context.Context, cmd *cli.Command) error {
	req, err := NewSendRequest(
		cmd.Args().Slice(),
		cmd.String("kind"),
		cmd.StringSlice("field"),
		cmd.StringSlice("short-field"),
		model.NotifyOptions{
			UserName:  cmd.String("username"),
			Channel:   cmd.String("channel"),
			IconEmoji: cmd.String("icon-emoji"),
		},
	)
	if err != nil {
		return err
	}

	config, err := NewConfig(cmd).Resolve(usecase.NewConfigService())
	if err != nil {
		return err
	}

	client, err := usecase.NewClient(config)
	if err != nil {
		return fmt.Errorf("%w\nSet --webhook-url, SLACK_WEBHOOK_URL or run `slacknotify config init`", err)
	}

	result := req.Execute(ctx, client)
	printResult(cmd.Root().Writer, result)
	if !result.OK() {
		return goerr.New("notification was not delivered", goerr.V("status", result.Status.String()))
	}
	return nil
}

func printResult(w io.Writer, result *model.SendResult) {
	switch result.Status {
	case model.SendDelivered:
		color.New(color.FgGreen, color.Bold).Fprintf(w, "✔ delivered (%d)\n", result.StatusCode)
	case model.SendHTTPError:
		color.New(color.FgRed, color.Bold).Fprintf(w, "✘ rejected by webhook (%d)\n", result.StatusCode)
	default:
		color.New(color.FgRed, color.Bold).Fprintf(w, "✘ transport error: %v\n", result.Err)
	}
}
