package chat

import (
	"sync"

	"fixify/models"
	"fixify/platform"

	"go.uber.org/zap"
)

// Manager hands out one connected chat session per user, mirroring the
// one-socket-per-browser-tab rule of the web client.
type Manager struct {
	backend   platform.API
	socketURL string
	dial      Dialer
	logger    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager dialing the given socket URL.
func NewManager(backend platform.API, socketURL string, logger *zap.Logger) *Manager {
	return &Manager{
		backend:   backend,
		socketURL: socketURL,
		dial:      DialWebsocket,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// Session returns the user's chat session, connecting it on first use.
func (m *Manager) Session(user models.User, token string) (*Session, error) {
	m.mu.Lock()
	sess, ok := m.sessions[user.ID]
	if !ok {
		sess = NewSession(m.backend, m.socketURL, m.dial, user, token, m.logger)
		m.sessions[user.ID] = sess
	}
	m.mu.Unlock()

	if err := sess.ConnectSocket(); err != nil {
		m.mu.Lock()
		delete(m.sessions, user.ID)
		m.mu.Unlock()
		return nil, err
	}
	return sess, nil
}

// Active returns the user's existing session without connecting.
func (m *Manager) Active(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[userID]
	return sess, ok
}

// Disconnect tears down the user's session.
func (m *Manager) Disconnect(userID string) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		sess.DisconnectSocket()
	}
}

// Shutdown disconnects every live session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, sess := range sessions {
		sess.DisconnectSocket()
	}
}
