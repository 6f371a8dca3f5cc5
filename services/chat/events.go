package chat

import "encoding/json"

// Socket event names shared with the backend.
const (
	EventJoinRoom    = "joinRoom"
	EventSendMessage = "sendMessage"
	EventNewMessage  = "newMessage"
)

type outboundEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type inboundEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
