// Package sqlite opens the portfolio's SQLite database with the pure-Go
// modernc.org/sqlite driver, applies embedded goose migrations and provides
// the contact message archive.
//
//	db, err := sqlite.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	if err := sqlite.Migrate(ctx, db, log); err != nil {
//		return err
//	}
//	store := sqlite.NewContactStore(db)
package sqlite
