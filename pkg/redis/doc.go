// Package redis provides the Redis client used by the catalog listing cache.
//
// It covers connection establishment with retries and a ping-based
// healthcheck for readiness endpoints. Key layout and TTL policy belong to
// the consumers.
package redis
