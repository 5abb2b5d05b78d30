package v1

// HostError is an error surfaced by the scripting host, carrying a stable
// machine-readable code alongside the human-readable message.
type HostError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *HostError) Error() string {
	return e.Message
}

// NewHostError creates a new host error
func NewHostError(code, message string) *HostError {
	return &HostError{
		Code:    code,
		Message: message,
	}
}

// Common host errors
var (
	ErrNotFound         = NewHostError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists    = NewHostError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput     = NewHostError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState     = NewHostError("INVALID_STATE", "Operation not allowed in current state")
	ErrNotLoaded        = NewHostError("NOT_LOADED", "Section was not requested by the originating load flags")
	ErrPermissionDenied = NewHostError("PERMISSION_DENIED", "Script is not permitted to perform this action")
	ErrHostUnavailable  = NewHostError("HOST_UNAVAILABLE", "Host subsystem is unavailable")
)
