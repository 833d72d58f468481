// Package redis opens and supervises the optional Redis connection that
// backs distributed rate limiting.
//
// It wraps [github.com/redis/go-redis/v9] with URL validation, a retried
// initial ping, a readiness check and a shutdown hook:
//
//	client, err := redis.Open(ctx, cfg.RedisURL, redis.WithIOTimeout(500*time.Millisecond))
//	if err != nil {
//		return err
//	}
//
//	checks["redis"] = redis.Healthcheck(client)
//	app.Run(addr, folio.ShutdownHook(redis.Shutdown(client)))
//
// # Errors
//
//   - [ErrEmptyConnectionURL] - empty connection URL
//   - [ErrFailedToParseURL] - unsupported scheme or malformed URL
//   - [ErrConnectionFailed] - no successful ping after all attempts
//   - [ErrHealthcheckFailed] - ping failed during a readiness check
package redis
