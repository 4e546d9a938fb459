package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := c.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	_, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return false, err
	}

	if time.Since(createdAt) > c.ttl {
		return false, nil
	}

	return true, nil
}

// UserIDFromToken resolves the session token to the owning user.
func (c *LoginChecker) UserIDFromToken(ctx context.Context, token string) (int, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := c.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return 0, err
	}

	userID, _, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	return userID, nil
}
