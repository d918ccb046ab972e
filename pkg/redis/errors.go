package redis

import "errors"

var (
	// ErrFailedToParseRedisConnString is returned when the connection URL is malformed.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned when the server cannot be reached within the retry budget.
	ErrRedisNotReady = errors.New("redis server is not ready")

	// ErrHealthcheckFailed is returned when the ping healthcheck fails.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
