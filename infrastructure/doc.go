// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process view store backed by go-cache
// - cache/redis: Redis-backed view store shared across instances
// - http/standard: Standard library HTTP client, one attempt per call
// - logger/logrus: logrus logger with optional rotating file output
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "view:"+id, data, time.Hour)
//	value, err := cache.Get(ctx, "view:"+id)
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The client never retries; a failed model call is reported to the caller:
//
//	client := standard.NewStandardHTTPClient(0, standard.WithTransport(rt))
//	resp, err := client.Post(ctx, endpoint, body, map[string]string{
//	    "x-goog-api-key": key,
//	})
//
// # Logger
//
//	logger, err := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Report generated", map[string]interface{}{
//	    "sources": 7,
//	})
package infrastructure
