package v1

import "context"

// Row is one result row keyed by column name.
type Row map[string]any

// Database is the namespace for running SQL against the host database.
// Which statements a script may run is governed by host-side permissions;
// denied statements fail with ErrPermissionDenied.
type Database interface {
	// Query runs a statement that returns rows.
	Query(ctx context.Context, query string, args ...any) ([]Row, error)

	// Execute runs a statement that returns no rows and reports the number
	// of affected rows.
	Execute(ctx context.Context, statement string, args ...any) (int64, error)
}
