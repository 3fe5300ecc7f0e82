package constvars

type ContextKey string

const (
	ContextRequestIDKey ContextKey = "request_id"
)

const (
	ResponseUnknown = "unknown"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

const (
	RedisSessionKeyPrefix = "portal:session:"
)
