package v1

import "context"

// CustomData is a scoped key-value store scripts use to persist small
// amounts of state between runs. Scopes isolate unrelated scripts from each
// other.
type CustomData interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, scope, key string) (string, bool, error)

	// Set stores a value, overwriting any existing one.
	Set(ctx context.Context, scope, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, scope, key string) error

	// Keys lists the keys present in a scope.
	Keys(ctx context.Context, scope string) ([]string, error)
}
