// Package gormdb implements the script Database contract on top of a gorm
// connection, passing raw SQL through to the host database.
package gormdb

import (
	"context"
	"fmt"

	v1 "github.com/Infigo-Official/types-for-megascript/v1"
	"gorm.io/gorm"
)

// Database implements v1.Database over *gorm.DB.
type Database struct {
	db *gorm.DB
}

var _ v1.Database = (*Database)(nil)

// New wraps the given gorm connection.
func New(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Query implements v1.Database
func (d *Database) Query(ctx context.Context, query string, args ...any) ([]v1.Row, error) {
	var rows []map[string]any
	if err := d.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("gormdb: query: %w", err)
	}

	out := make([]v1.Row, len(rows))
	for i, row := range rows {
		out[i] = v1.Row(row)
	}
	return out, nil
}

// Execute implements v1.Database
func (d *Database) Execute(ctx context.Context, statement string, args ...any) (int64, error) {
	tx := d.db.WithContext(ctx).Exec(statement, args...)
	if tx.Error != nil {
		return 0, fmt.Errorf("gormdb: execute: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
