// Package database opens the optional SQL database that can hold store
// profiles.
//
// Connect supports MySQL (production) and SQLite (local use and tests). The
// inspector helpers let the integrity check verify that the profile table
// has the columns the registry reads.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Database unavailable", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "store_profiles", []string{"store_key"})
package database
