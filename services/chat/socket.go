package chat

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Conn is the slice of a websocket connection the chat session needs.
// *websocket.Conn satisfies it; tests plug in fakes.
type Conn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
	Close() error
}

// Dialer opens a live connection to the given socket URL.
type Dialer func(url string) (Conn, error)

// DialWebsocket is the production dialer.
func DialWebsocket(url string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect chat socket: %w", err)
	}
	return conn, nil
}
