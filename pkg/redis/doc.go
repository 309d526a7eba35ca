// Package redis connects to a Redis server with startup retries and a
// health check, configured through REDIS_* environment variables.
//
//	cfg := config.MustLoad[redis.Config]()
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
package redis
