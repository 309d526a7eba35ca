// Package mongo connects to MongoDB with startup retries and a health
// check, configured through MONGODB_* environment variables.
//
//	cfg := config.MustLoad[mongo.Config]()
//	db, err := mongo.ConnectDatabase(ctx, cfg, "creditkit")
//	if err != nil {
//		return err
//	}
package mongo
