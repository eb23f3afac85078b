package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}

// EnsureLearningIndexes adds the read-path indexes gorm tags cannot express.
func EnsureLearningIndexes(db *gorm.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{
			name: "idx_learning_topic_domain_order",
			sql:  `CREATE INDEX IF NOT EXISTS idx_learning_topic_domain_order ON learning_topic (domain_id, order_position, insert_seq);`,
		},
		{
			name: "idx_learning_content_item_topic_order",
			sql:  `CREATE INDEX IF NOT EXISTS idx_learning_content_item_topic_order ON learning_content_item (topic_id, type, order_position, insert_seq);`,
		},
	}
	for _, s := range stmts {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
	}
	return nil
}
