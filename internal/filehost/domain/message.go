package domain

// MessageType is the "type" discriminator of a real-time frame.
type MessageType string

const (
	MessageInit   MessageType = "init"
	MessageUpdate MessageType = "update"
	MessageReset  MessageType = "reset"
)

// Message is one JSON text frame on the real-time channel.
// Content is a pointer so that a missing field can be told apart from "".
type Message struct {
	Type    MessageType `json:"type"`
	Content *string     `json:"content,omitempty"`
}

// NewMessage builds a frame carrying content.
func NewMessage(t MessageType, content string) Message {
	return Message{Type: t, Content: &content}
}
