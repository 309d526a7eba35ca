// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool
// with startup retries, goose migrations, a health check, and error
// classification helpers.
//
// Typical wiring:
//
//	cfg := config.MustLoad[pg.Config]()
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//
// All settings come from PG_* environment variables; see Config for the
// variable names and defaults.
package pg
