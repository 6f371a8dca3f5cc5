package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fixify/models"
	"fixify/utils"

	"github.com/go-redis/redis/v8"
)

// DraftStore owns BookingDraft persistence between wizard calls. It is
// injected into the wizard service so tests can run against an
// in-memory instance instead of a shared global.
type DraftStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Save(ctx context.Context, draft *models.BookingDraft) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisDraftStore keeps drafts JSON-marshaled in Redis with a TTL, so
// abandoned wizards expire on their own.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisDraftStore creates a draft store on the given client.
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{Client: client, TTL: utils.DraftTTL}
}

func draftKey(sessionID string) string {
	return utils.DraftCachePrefix + sessionID
}

func (s *RedisDraftStore) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, draftKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Client.Set(ctx, draftKey(draft.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}

// MemoryDraftStore is an in-process store used in tests and single
// instance deployments without Redis.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]models.BookingDraft
}

// NewMemoryDraftStore creates an empty in-memory store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]models.BookingDraft)}
}

func (s *MemoryDraftStore) Get(_ context.Context, sessionID string) (*models.BookingDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copied := draft
	return &copied, nil
}

func (s *MemoryDraftStore) Save(_ context.Context, draft *models.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.SessionID] = *draft
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}
