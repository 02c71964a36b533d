package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slacknotify/pkg/domain"
)

// Kind is the severity of a message. It selects attachment color and icon.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Footer is stamped on every attachment built from a Message.
const Footer = "SlackNotifier"

type kindStyle struct {
	color string
	icon  string
}

var kindStyles = map[Kind]kindStyle{
	KindSuccess: {color: "good", icon: "✅"},
	KindError:   {color: "danger", icon: "❌"},
	KindWarning: {color: "warning", icon: "⚠️"},
	KindInfo:    {color: "#439FE0", icon: "ℹ️"},
}

// Kinds lists all message kinds in display order.
var Kinds = []Kind{KindSuccess, KindError, KindWarning, KindInfo}

// ParseKind converts a kind name such as "warning" to a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindStyles[k]; !ok {
		return "", goerr.Wrap(domain.ErrInvalidArgument, "unknown message kind", goerr.V("kind", s))
	}
	return k, nil
}

// Color returns the Slack attachment color for the kind
func (k Kind) Color() string {
	return k.style().color
}

// Icon returns the glyph prepended to message text
func (k Kind) Icon() string {
	return k.style().icon
}

func (k Kind) style() kindStyle {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return kindStyles[KindInfo]
}

// now is replaced in tests
var now = time.Now

// Message is a formatted notification. Its attachment is derived once at
// construction and is not modified afterward.
type Message struct {
	text        string
	kind        Kind
	fields      []Field
	attachments []Attachment
}

// NewMessage builds a message of the given kind. Unknown kinds are styled as info.
func NewMessage(kind Kind, text string, fields ...Field) *Message {
	if _, ok := kindStyles[kind]; !ok {
		kind = KindInfo
	}

	copied := make([]Field, len(fields))
	copy(copied, fields)

	return &Message{
		text:   text,
		kind:   kind,
		fields: copied,
		attachments: []Attachment{
			{
				Color:     kind.Color(),
				Text:      kind.Icon() + " " + text,
				Fields:    copied,
				Footer:    Footer,
				Timestamp: now().Unix(),
			},
		},
	}
}

func SuccessMessage(text string, fields ...Field) *Message {
	return NewMessage(KindSuccess, text, fields...)
}

func ErrorMessage(text string, fields ...Field) *Message {
	return NewMessage(KindError, text, fields...)
}

func WarningMessage(text string, fields ...Field) *Message {
	return NewMessage(KindWarning, text, fields...)
}

func InfoMessage(text string, fields ...Field) *Message {
	return NewMessage(KindInfo, text, fields...)
}

// Text returns the original text without icon
func (m *Message) Text() string { return m.text }

func (m *Message) Kind() Kind { return m.kind }

// DisplayText returns the icon-prefixed text used in the payload
func (m *Message) DisplayText() string {
	return m.attachments[0].Text
}

// Fields returns a copy of the message fields
func (m *Message) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Attachments returns a copy of the derived attachments
func (m *Message) Attachments() []Attachment {
	out := make([]Attachment, len(m.attachments))
	for i, a := range m.attachments {
		a.Fields = append([]Field{}, a.Fields...)
		out[i] = a
	}
	return out
}
