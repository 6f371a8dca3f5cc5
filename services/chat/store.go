// Package chat manages realtime booking chat on behalf of one user: a
// single live socket connection, the active room, and the message list
// for that room. Outbound sends never touch the local list; the only
// append path is the inbound newMessage event, so ordering is
// server-authoritative.
package chat

import (
	"context"
	"encoding/json"
	"sync"

	"fixify/models"
	"fixify/platform"

	"go.uber.org/zap"
)

// Session is one user's chat state. Inbound events arrive on the read
// loop goroutine and interleave safely with user-initiated sends.
type Session struct {
	backend   platform.API
	logger    *zap.Logger
	socketURL string
	dial      Dialer
	user      models.User
	token     string

	mu              sync.Mutex
	conn            Conn
	connecting      bool
	activeBookingID string
	messages        []models.ChatMessage
}

// NewSession creates a disconnected session for the given user.
func NewSession(backend platform.API, socketURL string, dial Dialer, user models.User, token string, logger *zap.Logger) *Session {
	if dial == nil {
		dial = DialWebsocket
	}
	return &Session{
		backend:   backend,
		logger:    logger,
		socketURL: socketURL,
		dial:      dial,
		user:      user,
		token:     token,
	}
}

// ConnectSocket establishes the live connection and starts the inbound
// read loop. Calling it on an already connected session is a no-op;
// pair it with DisconnectSocket to avoid leaked connections.
func (s *Session) ConnectSocket() error {
	s.mu.Lock()
	// The connecting flag covers the window while the dial is in
	// flight, so a concurrent call cannot open a second connection.
	if s.conn != nil || s.connecting {
		s.mu.Unlock()
		return nil
	}
	s.connecting = true
	s.mu.Unlock()

	conn, err := s.dial(s.socketURL)

	s.mu.Lock()
	s.connecting = false
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if s.conn != nil {
		s.mu.Unlock()
		conn.Close()
		return nil
	}
	s.conn = conn
	s.mu.Unlock()

	go s.readLoop(conn)
	return nil
}

// DisconnectSocket tears down the live connection. The read loop exits
// on the resulting read error.
func (s *Session) DisconnectSocket() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	if conn != nil {
		if err := conn.Close(); err != nil {
			s.logger.Debug("chat socket close", zap.Error(err))
		}
	}
}

// OpenChat sets the active room, joins it over the live connection and
// replaces the local message list with fetched history. A failed
// history fetch is logged, not surfaced: the chat opens empty.
func (s *Session) OpenChat(ctx context.Context, bookingID string) error {
	s.mu.Lock()
	s.activeBookingID = bookingID
	s.messages = nil
	conn := s.conn
	s.mu.Unlock()

	if conn != nil {
		if err := conn.WriteJSON(outboundEvent{Event: EventJoinRoom, Data: bookingID}); err != nil {
			return err
		}
	}

	history, err := s.backend.ChatHistory(ctx, s.token, bookingID)
	if err != nil {
		s.logger.Warn("failed to fetch chat history",
			zap.String("bookingID", bookingID),
			zap.Error(err))
		return nil
	}

	s.mu.Lock()
	// Only apply if the room was not switched while fetching.
	if s.activeBookingID == bookingID {
		s.messages = history
	}
	s.mu.Unlock()
	return nil
}

// SendMessage emits the message over the live connection. It does not
// append locally; the message comes back via the newMessage event.
// Without an active room it is a no-op.
func (s *Session) SendMessage(text string) error {
	s.mu.Lock()
	conn := s.conn
	bookingID := s.activeBookingID
	s.mu.Unlock()

	if conn == nil || bookingID == "" {
		return nil
	}
	return conn.WriteJSON(outboundEvent{
		Event: EventSendMessage,
		Data: models.ChatOutbound{
			BookingID: bookingID,
			SenderID:  s.user.ID,
			Message:   text,
		},
	})
}

// CloseChat clears the active room and message list. The server-side
// room is not explicitly left; inbound events for it are filtered out.
func (s *Session) CloseChat() {
	s.mu.Lock()
	s.activeBookingID = ""
	s.messages = nil
	s.mu.Unlock()
}

// Messages returns a snapshot of the current room's message list.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// ActiveBookingID returns the current room id, empty when closed.
func (s *Session) ActiveBookingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeBookingID
}

func (s *Session) readLoop(conn Conn) {
	for {
		var ev inboundEvent
		if err := conn.ReadJSON(&ev); err != nil {
			s.logger.Debug("chat read loop ended", zap.Error(err))
			return
		}
		if ev.Event != EventNewMessage {
			continue
		}
		var msg models.ChatMessage
		if err := json.Unmarshal(ev.Data, &msg); err != nil {
			s.logger.Warn("malformed chat message", zap.Error(err))
			continue
		}
		s.appendInbound(msg)
	}
}

// appendInbound adds a received message to the local list. Messages
// tagged with a room other than the active one are dropped so a
// historically joined room cannot bleed into the open chat.
func (s *Session) appendInbound(msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeBookingID == "" {
		return
	}
	if msg.BookingID != "" && msg.BookingID != s.activeBookingID {
		return
	}
	s.messages = append(s.messages, msg)
}
