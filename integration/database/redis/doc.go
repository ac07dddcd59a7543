// Package redis connects to Redis for the optional shared preference store.
//
// Redis is off unless REDIS_URL is set. When it is, Connect validates the URL,
// pings with exponential backoff and returns a ready client:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//
//		store := preference.NewRedisStore(client)
//		check := redis.Healthcheck(client)
//	}
//
// Errors wrap ErrFailedToParseRedisConnString, ErrRedisNotReady,
// ErrEmptyConnectionURL and ErrHealthcheckFailed; check them with errors.Is.
package redis
