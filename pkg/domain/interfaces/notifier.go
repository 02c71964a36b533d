package interfaces

import (
	"context"

	"github.com/m-mizutani/slacknotify/pkg/domain/model"
)

// Notifier posts messages to a webhook. Implementations never return
// transport errors; the result reports delivery.
type Notifier interface {
	Notify(ctx context.Context, text string, opts model.NotifyOptions) bool
	Send(ctx context.Context, text string, opts model.NotifyOptions) *model.SendResult
	Success(ctx context.Context, text string, fields ...model.Field) bool
	Error(ctx context.Context, text string, fields ...model.Field) bool
	Warning(ctx context.Context, text string, fields ...model.Field) bool
	Info(ctx context.Context, text string, fields ...model.Field) bool
}
