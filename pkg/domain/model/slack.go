package model

// Payload represents the JSON payload for Slack webhook
type Payload struct {
	Text        string       `json:"text"`
	UserName    string       `json:"username"`
	Channel     string       `json:"channel,omitempty"`
	IconEmoji   string       `json:"icon_emoji,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment represents a Slack message attachment. Fields is always
// serialized; the client sends nil fields as an empty array.
type Attachment struct {
	Color     string  `json:"color,omitempty"`
	Pretext   string  `json:"pretext,omitempty"`
	Title     string  `json:"title,omitempty"`
	TitleLink string  `json:"title_link,omitempty"`
	Text      string  `json:"text,omitempty"`
	Fields    []Field `json:"fields"`
	Footer    string  `json:"footer,omitempty"`
	Timestamp int64   `json:"ts,omitempty"`
}

// Field represents a field in Slack attachment
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short,omitempty"`
}

// NotifyOptions overrides configuration defaults for a single message.
// Zero values mean the option was not supplied.
type NotifyOptions struct {
	UserName    string
	Channel     string
	IconEmoji   string // :emoji: format (only works if webhook allows customization)
	// Attachments is sent only when it has at least one element; nil and
	// empty slices both leave the key out.
	Attachments []Attachment
}
