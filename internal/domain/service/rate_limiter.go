package service

import "context"

// RateLimiter decides whether a request identified by key is within quota.
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
}
