package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type SessionStore interface {
	// 撤銷：登出後將 token id 放入黑名單直到原本的過期時間
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	// 查詢：token 是否已被撤銷
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisSessionStoreImpl struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &RedisSessionStoreImpl{
		client: client,
	}
}

// 黑名單 key
func (s *RedisSessionStoreImpl) getRevokedKey(tokenID string) string {
	return fmt.Sprintf("session:%s:revoked", tokenID)
}

func (s *RedisSessionStoreImpl) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// 已經過期的 token 不需要記錄
		return nil
	}
	return s.client.Set(ctx, s.getRevokedKey(tokenID), 1, ttl).Err()
}

func (s *RedisSessionStoreImpl) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.getRevokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
