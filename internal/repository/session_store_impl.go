package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) domainRepo.SessionStore {
	return &sessionStore{client: client, ttl: ttl}
}

func sessionKey(userID, tokenID string) string {
	return fmt.Sprintf("session:%s:%s", userID, tokenID)
}

func (s *sessionStore) Save(ctx context.Context, userID, tokenID string) error {
	return s.client.Set(ctx, sessionKey(userID, tokenID), "1", s.ttl).Err()
}

func (s *sessionStore) Exists(ctx context.Context, userID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *sessionStore) Destroy(ctx context.Context, userID, tokenID string) error {
	return s.client.Del(ctx, sessionKey(userID, tokenID)).Err()
}

func (s *sessionStore) DestroyAll(ctx context.Context, userID string) error {
	pattern := sessionKey(userID, "*")
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
