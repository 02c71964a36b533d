package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slacknotify/pkg/domain"
	"github.com/m-mizutani/slacknotify/pkg/domain/interfaces"
	"github.com/m-mizutani/slacknotify/pkg/domain/model"
)

// DefaultTimeout bounds a single webhook round trip
const DefaultTimeout = 10 * time.Second

// maxErrorBody limits how much of a failed response is kept for diagnostics
const maxErrorBody = 1024

// Client posts messages to a Slack incoming webhook
type Client struct {
	config     model.Config
	httpClient interfaces.HTTPClient
}

var _ interfaces.Notifier = (*Client)(nil)

type ClientOption func(*Client)

// WithHTTPClient replaces the transport used for webhook requests
func WithHTTPClient(httpClient interfaces.HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default transport
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// NewClient validates config and returns a client holding a copy of it.
// Later changes to config do not affect the client.
func NewClient(config *model.Config, opts ...ClientOption) (*Client, error) {
	if config == nil {
		return nil, goerr.Wrap(domain.ErrConfiguration, "config is nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: *config,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Config returns a copy of the client configuration
func (c *Client) Config() *model.Config {
	return c.config.Clone()
}

// Notify sends text to the webhook and reports whether it was accepted.
// Transport failures are logged and reported as false.
func (c *Client) Notify(ctx context.Context, text string, opts model.NotifyOptions) bool {
	return c.Send(ctx, text, opts).OK()
}

// Send is Notify with the delivery details kept
func (c *Client) Send(ctx context.Context, text string, opts model.NotifyOptions) *model.SendResult {
	logger := ctxlog.From(ctx)

	result := c.post(ctx, c.BuildPayload(text, opts))
	if !result.OK() {
		logger.Warn("Failed to send Slack notification",
			slog.String("webhook_url", maskWebhookURL(c.config.WebhookURL)),
			slog.String("status", result.Status.String()),
			slog.Int("status_code", result.StatusCode),
			slog.Any("error", result.Err),
		)
		return result
	}

	logger.Debug("Slack notification sent successfully",
		slog.Int("status_code", result.StatusCode),
	)
	return result
}

// Success sends text as a success message with optional fields
func (c *Client) Success(ctx context.Context, text string, fields ...model.Field) bool {
	return c.notifyMessage(ctx, model.SuccessMessage(text, fields...))
}

// Error sends text as an error message with optional fields
func (c *Client) Error(ctx context.Context, text string, fields ...model.Field) bool {
	return c.notifyMessage(ctx, model.ErrorMessage(text, fields...))
}

// Warning sends text as a warning message with optional fields
func (c *Client) Warning(ctx context.Context, text string, fields ...model.Field) bool {
	return c.notifyMessage(ctx, model.WarningMessage(text, fields...))
}

// Info sends text as an info message with optional fields
func (c *Client) Info(ctx context.Context, text string, fields ...model.Field) bool {
	return c.notifyMessage(ctx, model.InfoMessage(text, fields...))
}

func (c *Client) notifyMessage(ctx context.Context, msg *model.Message) bool {
	return c.Notify(ctx, msg.DisplayText(), model.NotifyOptions{
		Attachments: msg.Attachments(),
	})
}

// BuildPayload overlays opts onto the configured defaults
func (c *Client) BuildPayload(text string, opts model.NotifyOptions) model.Payload {
	payload := model.Payload{
		Text:     text,
		UserName: c.config.UserName,
		Channel:  c.config.Channel,
	}

	if opts.UserName != "" {
		payload.UserName = opts.UserName
	}
	if opts.Channel != "" {
		payload.Channel = opts.Channel
	}
	if opts.IconEmoji != "" {
		payload.IconEmoji = opts.IconEmoji
	}
	if opts.Attachments != nil {
		payload.Attachments = normalizeAttachments(opts.Attachments)
	}

	return payload
}

// normalizeAttachments copies attachments so that nil fields are sent as []
func normalizeAttachments(attachments []model.Attachment) []model.Attachment {
	out := make([]model.Attachment, len(attachments))
	for i, a := range attachments {
		if a.Fields == nil {
			a.Fields = []model.Field{}
		}
		out[i] = a
	}
	return out
}

// post sends the payload to the webhook
func (c *Client) post(ctx context.Context, payload model.Payload) *model.SendResult {
	logger := ctxlog.From(ctx)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return transportError(goerr.Wrap(err, "failed to marshal slack payload"))
	}

	logger.Debug("Sending to Slack",
		slog.String("webhook_url", maskWebhookURL(c.config.WebhookURL)),
		slog.String("payload", string(jsonData)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return transportError(goerr.Wrap(err, "failed to create request"))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(goerr.Wrap(err, "failed to send request"))
	}
	defer resp.Body.Close()

	if !model.IsSuccessStatus(resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) // Best effort to read response
		return &model.SendResult{
			Status:     model.SendHTTPError,
			StatusCode: resp.StatusCode,
			Err: goerr.Wrap(domain.ErrHTTPStatus, "slack webhook rejected payload",
				goerr.V("status", resp.StatusCode),
				goerr.V("body", string(body)),
			),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return &model.SendResult{
		Status:     model.SendDelivered,
		StatusCode: resp.StatusCode,
	}
}

func transportError(err error) *model.SendResult {
	return &model.SendResult{
		Status: model.SendTransportError,
		Err:    domain.ErrTransport.Wrap(err),
	}
}

// maskWebhookURL masks the webhook URL for logging
func maskWebhookURL(url string) string {
	if strings.Contains(url, "hooks.slack.com") {
		parts := strings.Split(url, "/")
		if len(parts) > 3 {
			// The last three segments carry the webhook secret
			for i := len(parts) - 3; i < len(parts); i++ {
				if len(parts[i]) > 4 {
					parts[i] = parts[i][:2] + "***"
				}
			}
			return strings.Join(parts, "/")
		}
	}
	if len(url) > 20 {
		return url[:20] + "***"
	}
	return "***"
}
