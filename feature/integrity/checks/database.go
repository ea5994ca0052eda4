package checks

import (
	"fmt"

	"catalog-sync/core/database"
	"catalog-sync/core/registry"

	"gorm.io/gorm"
)

// TableReport is the result of a profile table schema check.
type TableReport struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
	Error          string   `json:"error,omitempty"`
}

// CheckProfileTable verifies the store_profiles table has every column the
// registry reads.
func CheckProfileTable(db *gorm.DB) (*TableReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	table := registry.StoreProfile{}.TableName()
	report := &TableReport{Table: table, MissingColumns: []string{}, Status: "ok"}

	missing, err := database.MissingColumns(db, table, registry.ProfileColumns)
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report, nil
	}
	if len(missing) > 0 {
		report.MissingColumns = missing
		report.Status = "error"
	}
	return report, nil
}
