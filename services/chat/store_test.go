package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"fixify/models"
	"fixify/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChatBackend struct {
	platform.API

	history    map[string][]models.ChatMessage
	historyErr error
}

func (f *fakeChatBackend) ChatHistory(_ context.Context, _ string, bookingID string) ([]models.ChatMessage, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history[bookingID], nil
}

// fakeConn records writes and blocks reads until the test feeds an
// inbound event or closes the connection.
type fakeConn struct {
	writes  []outboundEvent
	inbound chan inboundEvent
	closed  bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{inbound: make(chan inboundEvent)}
}

func (c *fakeConn) ReadJSON(v interface{}) error {
	ev, ok := <-c.inbound
	if !ok {
		return errors.New("connection closed")
	}
	*(v.(*inboundEvent)) = ev
	return nil
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.writes = append(c.writes, v.(outboundEvent))
	return nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	close(c.inbound)
	return nil
}

func (c *fakeConn) feed(t *testing.T, event string, payload interface{}) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	c.inbound <- inboundEvent{Event: event, Data: data}
}

func newTestSession(backend *fakeChatBackend) (*Session, *fakeConn) {
	conn := newFakeConn()
	dial := func(string) (Conn, error) { return conn, nil }
	user := models.User{ID: "user-1", Name: "Jane"}
	return NewSession(backend, "ws://test", dial, user, "tok", zap.NewNop()), conn
}

// waitFor polls a session snapshot until the read loop, which runs on
// its own goroutine, has applied an inbound event.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestOpenChatJoinsRoomAndLoadsHistory(t *testing.T) {
	backend := &fakeChatBackend{history: map[string][]models.ChatMessage{
		"bk-1": {{ID: "m1", SenderID: "prov-1", Message: "On my way"}},
	}}
	session, conn := newTestSession(backend)
	require.NoError(t, session.ConnectSocket())
	defer session.DisconnectSocket()

	require.NoError(t, session.OpenChat(context.Background(), "bk-1"))

	require.Len(t, conn.writes, 1)
	assert.Equal(t, EventJoinRoom, conn.writes[0].Event)
	assert.Equal(t, "bk-1", conn.writes[0].Data)

	msgs := session.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "On my way", msgs[0].Message)
}

func TestOpenChatSurvivesHistoryFailure(t *testing.T) {
	backend := &fakeChatBackend{historyErr: errors.New("backend down")}
	session, _ := newTestSession(backend)
	require.NoError(t, session.ConnectSocket())
	defer session.DisconnectSocket()

	require.NoError(t, session.OpenChat(context.Background(), "bk-1"))
	assert.Equal(t, "bk-1", session.ActiveBookingID())
	assert.Empty(t, session.Messages())
}

func TestSendMessageEmitsWithoutLocalAppend(t *testing.T) {
	backend := &fakeChatBackend{}
	session, conn := newTestSession(backend)
	require.NoError(t, session.ConnectSocket())
	defer session.DisconnectSocket()
	require.NoError(t, session.OpenChat(context.Background(), "bk-1"))

	require.NoError(t, session.SendMessage("hello there"))

	require.Len(t, conn.writes, 2) // joinRoom + sendMessage
	assert.Equal(t, EventSendMessage, conn.writes[1].Event)
	payload, ok := conn.writes[1].Data.(models.ChatOutbound)
	require.True(t, ok)
	assert.Equal(t, models.ChatOutbound{BookingID: "bk-1", SenderID: "user-1", Message: "hello there"}, payload)

	// The echo comes back via newMessage; nothing is appended locally.
	assert.Empty(t, session.Messages())
}

func TestSendMessageWithoutActiveRoomIsNoop(t *testing.T) {
	backend := &fakeChatBackend{}
	session, conn := newTestSession(backend)
	require.NoError(t, session.ConnectSocket())
	defer session.DisconnectSocket()

	require.NoError(t, session.SendMessage("hello"))
	assert.Empty(t, conn.writes)
}

func TestInboundMessageAppends(t *testing.T) {
	backend := &fakeChatBackend{}
	session, conn := newTestSession(backend)
	require.NoError(t, session.ConnectSocket())
	defer session.DisconnectSocket()
	require.NoError(t, session.OpenChat(context.Background(), "bk-1"))

	conn.feed(t, EventNewMessage, models.ChatMessage{ID: "m1", BookingID: "bk-1", SenderID: "prov-1", Message: "confirmed"})
	waitFor(t, func() bool { return len(session.Messages()) == 1 })

	assert.Equal(t, "confirmed", session.Messages()[0].Message)
}

func TestInboundForeignRoomMessageIsDropped(t *testing.T) {
	backend := &fakeChatBackend{}
	session, conn := newTestSession(backend)
	require.NoError(t, session.ConnectSocket())
	defer session.DisconnectSocket()
	require.NoError(t, session.OpenChat(context.Background(), "bk-1"))

	conn.feed(t, EventNewMessage, models.ChatMessage{ID: "m1", BookingID: "bk-other", Message: "not yours"})
	conn.feed(t, EventNewMessage, models.ChatMessage{ID: "m2", BookingID: "bk-1", Message: "yours"})
	waitFor(t, func() bool { return len(session.Messages()) == 1 })

	assert.Equal(t, "yours", session.Messages()[0].Message)
}

func TestCloseChatClearsRoomAndMessages(t *testing.T) {
	backend := &fakeChatBackend{history: map[string][]models.ChatMessage{
		"bk-1": {{ID: "m1", Message: "old"}},
	}}
	session, conn := newTestSession(backend)
	require.NoError(t, session.ConnectSocket())
	defer session.DisconnectSocket()
	require.NoError(t, session.OpenChat(context.Background(), "bk-1"))

	session.CloseChat()
	assert.Empty(t, session.ActiveBookingID())
	assert.Empty(t, session.Messages())

	// With no active room, inbound events are dropped.
	conn.feed(t, EventNewMessage, models.ChatMessage{ID: "m2", BookingID: "bk-1", Message: "late"})
	conn.feed(t, EventNewMessage, models.ChatMessage{ID: "m3", BookingID: "bk-1", Message: "later"})
	assert.Empty(t, session.Messages())
}

func TestReopenReplacesHistory(t *testing.T) {
	backend := &fakeChatBackend{history: map[string][]models.ChatMessage{
		"bk-1": {{ID: "m1", Message: "first room"}},
		"bk-2": {{ID: "m2", Message: "second room"}, {ID: "m3", Message: "again"}},
	}}
	session, conn := newTestSession(backend)
	require.NoError(t, session.ConnectSocket())
	defer session.DisconnectSocket()

	require.NoError(t, session.OpenChat(context.Background(), "bk-1"))
	require.NoError(t, session.OpenChat(context.Background(), "bk-2"))

	assert.Equal(t, "bk-2", session.ActiveBookingID())
	msgs := session.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "second room", msgs[0].Message)

	// Both rooms were joined over the wire.
	require.Len(t, conn.writes, 2)
	assert.Equal(t, "bk-1", conn.writes[0].Data)
	assert.Equal(t, "bk-2", conn.writes[1].Data)
}

func TestConcurrentConnectOpensOneConnection(t *testing.T) {
	backend := &fakeChatBackend{}
	var mu sync.Mutex
	var conns []*fakeConn
	dial := func(string) (Conn, error) {
		// Slow dial widens the window between check and connect.
		time.Sleep(50 * time.Millisecond)
		conn := newFakeConn()
		mu.Lock()
		conns = append(conns, conn)
		mu.Unlock()
		return conn, nil
	}
	session := NewSession(backend, "ws://test", dial, models.User{ID: "user-1"}, "tok", zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, session.ConnectSocket())
		}()
	}
	wg.Wait()
	session.DisconnectSocket()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, conns, 1)
	assert.True(t, conns[0].closed)
}

func TestConnectSocketIsIdempotent(t *testing.T) {
	backend := &fakeChatBackend{}
	dials := 0
	conn := newFakeConn()
	dial := func(string) (Conn, error) {
		dials++
		return conn, nil
	}
	session := NewSession(backend, "ws://test", dial, models.User{ID: "user-1"}, "tok", zap.NewNop())

	require.NoError(t, session.ConnectSocket())
	require.NoError(t, session.ConnectSocket())
	assert.Equal(t, 1, dials)
	session.DisconnectSocket()
}
