package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	RedisFlashKeyPrefix = "session:flash:"

	// Timeout for individual Redis operations
	redisFlashTimeout = 2 * time.Second
)

// FlashService keeps one-shot messages for a browser session between a
// redirect and the page it lands on.
type FlashService interface {
	// Add appends messages to the session's pending list.
	Add(ctx context.Context, sessionID string, messages ...string) error
	// Pop returns the pending messages in the order they were added and
	// clears them.
	Pop(ctx context.Context, sessionID string) ([]string, error)
}

type flashService struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewFlashService(client *redis.Client, log *logrus.Logger, ttl time.Duration) FlashService {
	return &flashService{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func flashKey(sessionID string) string {
	return fmt.Sprintf("%s%s", RedisFlashKeyPrefix, sessionID)
}

func (s *flashService) Add(ctx context.Context, sessionID string, messages ...string) error {
	if len(messages) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisFlashTimeout)
	defer cancel()

	values := make([]interface{}, len(messages))
	for i, m := range messages {
		values[i] = m
	}

	key := flashKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to store flash messages: %+v", err)
		return err
	}
	return nil
}

func (s *flashService) Pop(ctx context.Context, sessionID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, redisFlashTimeout)
	defer cancel()

	key := flashKey(sessionID)
	pipe := s.client.TxPipeline()
	list := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to read flash messages: %+v", err)
		return nil, err
	}
	return list.Val(), nil
}
