package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/slacknotify/pkg/domain"
	"github.com/m-mizutani/slacknotify/pkg/domain/model"
)

func TestMessageKinds(t *testing.T) {
	testCases := []struct {
		name  string
		build func(string, ...model.Field) *model.Message
		kind  model.Kind
		color string
		icon  string
	}{
		{name: "success", build: model.SuccessMessage, kind: model.KindSuccess, color: "good", icon: "✅"},
		{name: "error", build: model.ErrorMessage, kind: model.KindError, color: "danger", icon: "❌"},
		{name: "warning", build: model.WarningMessage, kind: model.KindWarning, color: "warning", icon: "⚠️"},
		{name: "info", build: model.InfoMessage, kind: model.KindInfo, color: "#439FE0", icon: "ℹ️"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := tc.build("Server restarted")

			gt.Equal(t, msg.Kind(), tc.kind)
			gt.Equal(t, msg.Text(), "Server restarted")
			gt.Equal(t, msg.DisplayText(), tc.icon+" Server restarted")

			attachments := msg.Attachments()
			gt.Equal(t, len(attachments), 1)
			gt.Equal(t, attachments[0].Color, tc.color)
			gt.Equal(t, attachments[0].Text, tc.icon+" Server restarted")
			gt.Equal(t, attachments[0].Footer, "SlackNotifier")
			gt.Equal(t, len(attachments[0].Fields), 0)
		})
	}
}

func TestMessageTimestamp(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	restore := model.SetNow(func() time.Time { return fixed })
	defer restore()

	msg := model.InfoMessage("tick")
	gt.Equal(t, msg.Attachments()[0].Timestamp, fixed.Unix())
}

func TestMessageFields(t *testing.T) {
	t.Run("fields are passed through", func(t *testing.T) {
		msg := model.WarningMessage("Disk space low",
			model.Field{Title: "host", Value: "web-1", Short: true},
			model.Field{Title: "usage", Value: "93%"},
		)

		fields := msg.Attachments()[0].Fields
		gt.Equal(t, len(fields), 2)
		gt.Equal(t, fields[0], model.Field{Title: "host", Value: "web-1", Short: true})
		gt.Equal(t, fields[1], model.Field{Title: "usage", Value: "93%"})
	})

	t.Run("caller slice changes do not leak in", func(t *testing.T) {
		fields := []model.Field{{Title: "env", Value: "prod"}}
		msg := model.SuccessMessage("Deploy ok", fields...)
		fields[0].Value = "staging"

		gt.Equal(t, msg.Attachments()[0].Fields[0].Value, "prod")
		gt.Equal(t, msg.Fields()[0].Value, "prod")
	})

	t.Run("returned attachments are copies", func(t *testing.T) {
		msg := model.SuccessMessage("Deploy ok", model.Field{Title: "env", Value: "prod"})
		a := msg.Attachments()
		a[0].Color = "danger"
		a[0].Fields[0].Value = "staging"

		gt.Equal(t, msg.Attachments()[0].Color, "good")
		gt.Equal(t, msg.Attachments()[0].Fields[0].Value, "prod")
	})

	t.Run("empty fields serialize as array", func(t *testing.T) {
		data, err := json.Marshal(model.ErrorMessage("boom").Attachments()[0])
		gt.NoError(t, err)

		var decoded map[string]any
		gt.NoError(t, json.Unmarshal(data, &decoded))
		fields, ok := decoded["fields"].([]any)
		gt.True(t, ok)
		gt.Equal(t, len(fields), 0)
	})
}

func TestNewMessageUnknownKind(t *testing.T) {
	msg := model.NewMessage(model.Kind("critical"), "odd")
	gt.Equal(t, msg.Kind(), model.KindInfo)
	gt.Equal(t, msg.Attachments()[0].Color, "#439FE0")
}

func TestParseKind(t *testing.T) {
	for _, k := range model.Kinds {
		parsed, err := model.ParseKind(string(k))
		gt.NoError(t, err)
		gt.Equal(t, parsed, k)
	}

	_, err := model.ParseKind("fatal")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, domain.ErrInvalidArgument))
}
