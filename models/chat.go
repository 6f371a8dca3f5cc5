package models

// ChatMessage is one message in a booking's chat room. BookingID is set
// by the server on room broadcasts and is used client-side to filter
// messages that do not belong to the active room.
type ChatMessage struct {
	ID        string `json:"id"`
	BookingID string `json:"bookingId,omitempty"`
	SenderID  string `json:"senderId"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// ChatOutbound is the payload emitted on sendMessage.
type ChatOutbound struct {
	BookingID string `json:"bookingId"`
	SenderID  string `json:"senderId"`
	Message   string `json:"message"`
}
