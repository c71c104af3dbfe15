package notify

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var instanceID = getEnv("INSTANCE_ID", uuid.New().String())

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// RunLock keeps a scheduled job at-most-once per trigger when several
// instances share the same cron schedule.
type RunLock interface {
	TryAcquire(name string, ttl time.Duration) bool
}

type RedisRunLock struct {
	db *redis.Client
}

func NewRedisRunLock(db *redis.Client) *RedisRunLock {
	return &RedisRunLock{db: db}
}

func (l *RedisRunLock) TryAcquire(name string, ttl time.Duration) bool {
	key := fmt.Sprintf("leader:%s", name)
	ok, err := l.db.SetNX(context.Background(), key, instanceID, ttl).Result()
	if err != nil {
		return false
	}
	return ok
}
