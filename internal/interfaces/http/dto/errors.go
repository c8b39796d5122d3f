package dto

import "net/http"

// Error codes surfaced on the HTTP boundary. Domain errors carry their own
// codes; unknown codes fall back to 500.
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"

	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidState  = "INVALID_STATE"

	// ErrCodeOperationFailed is raised when a gateway provider or its
	// storage refuses an otherwise well-formed request
	ErrCodeOperationFailed = "OPERATION_FAILED"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,

	ErrCodeOperationFailed: http.StatusUnprocessableEntity,

	// Domain validation codes raised by aggregate constructors
	"INVALID_NAME":            http.StatusBadRequest,
	"INVALID_SKU":             http.StatusBadRequest,
	"INVALID_PRICE":           http.StatusBadRequest,
	"INVALID_WEIGHT":          http.StatusBadRequest,
	"INVALID_CHOICE":          http.StatusBadRequest,
	"INVALID_OPTION":          http.StatusBadRequest,
	"INVALID_ATTRIBUTE":       http.StatusBadRequest,
	"INVALID_COUNTRY_CODE":    http.StatusBadRequest,
	"INVALID_RATE_TABLE_TYPE": http.StatusBadRequest,
	"INVALID_RATE_TIER":       http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
