// Package line implements the subset of the LINE Messaging API this service
// speaks: webhook payload decoding, request signature verification, and the
// reply / content endpoints.
package line

import "encoding/json"

// EventKind identifies the webhook event variant. Strings the decoder does
// not recognize map to EventUnknown and are ignored by the router rather
// than guessed at from optional-field presence.
type EventKind string

const (
	EventMessage  EventKind = "message"
	EventPostback EventKind = "postback"
	EventUnknown  EventKind = "unknown"
)

// MessageKind identifies the message payload variant within a message event.
type MessageKind string

const (
	MessageText    MessageKind = "text"
	MessageImage   MessageKind = "image"
	MessageUnknown MessageKind = "unknown"
)

// Webhook is one decoded webhook delivery: an ordered list of events.
type Webhook struct {
	Events []Event `json:"events"`
}

// Event is one entry of a webhook delivery.
type Event struct {
	Kind       EventKind
	ReplyToken string
	Source     Source
	Timestamp  int64
	Message    *Message
	Postback   *Postback
}

// Source identifies where an event originated.
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
	RoomID  string `json:"roomId"`
}

// Message is the message payload of a message event.
type Message struct {
	ID   string
	Kind MessageKind
	Text string
}

// Postback is the payload of a postback event. Data is an urlencoded
// key=value string chosen by whoever built the originating action.
type Postback struct {
	Data string `json:"data"`
}

type eventWire struct {
	Type       string       `json:"type"`
	ReplyToken string       `json:"replyToken"`
	Source     Source       `json:"source"`
	Timestamp  int64        `json:"timestamp"`
	Message    *messageWire `json:"message"`
	Postback   *Postback    `json:"postback"`
}

type messageWire struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// UnmarshalJSON decodes the wire event into the closed variant types.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w eventWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Kind = parseEventKind(w.Type)
	e.ReplyToken = w.ReplyToken
	e.Source = w.Source
	e.Timestamp = w.Timestamp
	e.Postback = w.Postback
	if w.Message != nil {
		e.Message = &Message{
			ID:   w.Message.ID,
			Kind: parseMessageKind(w.Message.Type),
			Text: w.Message.Text,
		}
	}
	return nil
}

func parseEventKind(raw string) EventKind {
	switch raw {
	case "message":
		return EventMessage
	case "postback":
		return EventPostback
	default:
		return EventUnknown
	}
}

func parseMessageKind(raw string) MessageKind {
	switch raw {
	case "text":
		return MessageText
	case "image":
		return MessageImage
	default:
		return MessageUnknown
	}
}
