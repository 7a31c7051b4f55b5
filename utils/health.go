package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
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
// A nil client (memory session store) reports Redis as healthy.
func StartHealthMonitor(client *redis.Client) {
	setHealth(client)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			setHealth(client)
		}
	}()
}

func setHealth(client *redis.Client) {
	healthy := true
	if client != nil {
		healthy = client.Ping(context.Background()).Err() == nil
	}

	mu.Lock()
	currentHealth = HealthStatus{
		Redis:     healthy,
		CheckedAt: time.Now(),
	}
	mu.Unlock()
}
