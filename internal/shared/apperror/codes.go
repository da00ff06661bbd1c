package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput    = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	// Conflict keeps status 400: the fleet API contract maps uniqueness
	// violations to Bad Request, not 409.
	CodeConflict = "CONFLICT"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
