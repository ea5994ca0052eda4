package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Columns returns the lower-cased column names of a table.
func Columns(db *gorm.DB, table string) ([]string, error) {
	if !db.Migrator().HasTable(table) {
		return nil, fmt.Errorf("table %s does not exist", table)
	}

	types, err := db.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}

	columns := make([]string, 0, len(types))
	for _, ct := range types {
		columns = append(columns, strings.ToLower(ct.Name()))
	}
	return columns, nil
}

// MissingColumns reports which of the expected columns the table lacks.
func MissingColumns(db *gorm.DB, table string, expected []string) ([]string, error) {
	columns, err := Columns(db, table)
	if err != nil {
		return nil, err
	}

	have := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		have[c] = struct{}{}
	}

	var missing []string
	for _, c := range expected {
		if _, ok := have[strings.ToLower(c)]; !ok {
			missing = append(missing, c)
		}
	}
	return missing, nil
}
