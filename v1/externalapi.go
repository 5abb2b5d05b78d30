package v1

import "context"

// ExternalAPI is the namespace for calling external integrations configured
// on the host. Scripts address an integration by its configured name; the
// host owns credentials, endpoints, and transport.
type ExternalAPI interface {
	// Invoke calls the named integration with the given payload. Unknown
	// names fail with ErrNotFound; integrations the script may not use fail
	// with ErrPermissionDenied.
	Invoke(ctx context.Context, name string, payload any) (*ExternalAPIResult, error)
}

// ExternalAPIResult is the raw outcome of an integration call.
type ExternalAPIResult struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}
