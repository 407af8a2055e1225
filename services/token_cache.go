package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ICE-TOOLS/icefit/utils"
)

// TokenCache keeps issued refresh tokens in redis so they can be revoked.
// A refresh token that is not present in the cache is rejected even when its
// signature still verifies.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

func refreshKey(token string) string {
	return "refresh_token:" + token
}

func (c *TokenCache) SaveRefresh(ctx context.Context, userID uint, refreshToken string) error {
	return c.client.Set(ctx, refreshKey(refreshToken), fmt.Sprint(userID), utils.RefreshTokenTTL).Err()
}

// CheckRefresh returns the owning user id, or redis.Nil when unknown.
func (c *TokenCache) CheckRefresh(ctx context.Context, refreshToken string) (string, error) {
	return c.client.Get(ctx, refreshKey(refreshToken)).Result()
}

func (c *TokenCache) DeleteRefresh(ctx context.Context, refreshToken string) error {
	return c.client.Del(ctx, refreshKey(refreshToken)).Err()
}
