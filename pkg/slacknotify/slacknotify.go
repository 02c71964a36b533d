// Package slacknotify provides a process-wide default configuration and
// package-level helpers for applications that do not want to carry a
// usecase.Client around. Libraries should construct their own client.
package slacknotify

import (
	"context"
	"sync"

	"github.com/m-mizutani/slacknotify/pkg/domain/model"
	"github.com/m-mizutani/slacknotify/pkg/usecase"
)

var (
	mu            sync.Mutex
	defaultConfig *model.Config
	clientOptions []usecase.ClientOption
)

// Configure modifies the default configuration under lock
func Configure(fn func(config *model.Config)) {
	mu.Lock()
	defer mu.Unlock()
	fn(current())
}

// Configuration returns a copy of the default configuration
func Configuration() *model.Config {
	mu.Lock()
	defer mu.Unlock()
	return current().Clone()
}

// ResetConfiguration restores the default configuration and client options
func ResetConfiguration() {
	mu.Lock()
	defer mu.Unlock()
	defaultConfig = model.NewConfig()
	clientOptions = nil
}

// SetClientOptions sets options applied to every client built from the default configuration
func SetClientOptions(opts ...usecase.ClientOption) {
	mu.Lock()
	defer mu.Unlock()
	clientOptions = opts
}

// current must be called with mu held
func current() *model.Config {
	if defaultConfig == nil {
		defaultConfig = model.NewConfig()
	}
	return defaultConfig
}

// NewClient builds a client from a snapshot of the default configuration
func NewClient() (*usecase.Client, error) {
	mu.Lock()
	config := current().Clone()
	opts := clientOptions
	mu.Unlock()

	return usecase.NewClient(config, opts...)
}

// Notify sends text with the default configuration. The error is only
// returned for an invalid configuration; delivery failures are reported as false.
func Notify(ctx context.Context, text string, opts model.NotifyOptions) (bool, error) {
	client, err := NewClient()
	if err != nil {
		return false, err
	}
	return client.Notify(ctx, text, opts), nil
}

func Success(ctx context.Context, text string, fields ...model.Field) (bool, error) {
	client, err := NewClient()
	if err != nil {
		return false, err
	}
	return client.Success(ctx, text, fields...), nil
}

func Error(ctx context.Context, text string, fields ...model.Field) (bool, error) {
	client, err := NewClient()
	if err != nil {
		return false, err
	}
	return client.Error(ctx, text, fields...), nil
}

func Warning(ctx context.Context, text string, fields ...model.Field) (bool, error) {
	client, err := NewClient()
	if err != nil {
		return false, err
	}
	return client.Warning(ctx, text, fields...), nil
}

func Info(ctx context.Context, text string, fields ...model.Field) (bool, error) {
	client, err := NewClient()
	if err != nil {
		return false, err
	}
	return client.Info(ctx, text, fields...), nil
}
