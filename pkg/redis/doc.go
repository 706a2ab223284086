// Package redis connects to the redis instance that backs cross-instance scan
// deduplication, using github.com/redis/go-redis/v9.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    ...
//	    ready := redis.Healthcheck(client)
//	}
package redis
