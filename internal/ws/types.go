package ws

import (
	"encoding/json"
	"errors"
)

// ErrMissingCell rejects a select without both coordinates.
var ErrMissingCell = errors.New("select needs both row and col")

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeSelect    MessageType = "select"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SelectPayload is the body of a select message: the clicked cell. The
// fields are pointers so a missing coordinate is not read as zero.
type SelectPayload struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

// Cell returns the clicked coordinates.
func (p SelectPayload) Cell() (row, col int, err error) {
	if p.Row == nil || p.Col == nil {
		return 0, 0, ErrMissingCell
	}
	return *p.Row, *p.Col, nil
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// NewErrorMessage wraps an error text as a JSON string payload.
func NewErrorMessage(text string) Message {
	raw, _ := json.Marshal(text)
	return Message{Type: MessageTypeError, Payload: raw}
}
