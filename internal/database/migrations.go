package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes the statistics queries depend on.
// AutoMigrate already creates the single-column indexes declared in tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// The stats engine filters on (user_id, session_type, completed)
		// and ranges over started_at within that scope.
		{"sessions", "idx_sessions_user_type_completed", "user_id, session_type, completed"},
		{"sessions", "idx_sessions_user_started_at", "user_id, started_at"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
