package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The first sample is taken immediately so /health never serves an empty snapshot.
func StartHealthMonitor(redisClients []*redis.Client) {
	go func() {
		ctx := context.Background()
		sampleHealth(ctx, redisClients)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			sampleHealth(ctx, redisClients)
		}
	}()
}

func sampleHealth(ctx context.Context, redisClients []*redis.Client) {
	var redisHealth []bool

	for _, client := range redisClients {
		err := client.Ping(ctx).Err()
		redisHealth = append(redisHealth, err == nil)
	}

	mu.Lock()
	currentHealth = HealthStatus{
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	mu.Unlock()
}
