package types

// APIError is the stable error body returned by every failing endpoint.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError under the "error" key.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewErrorResponse creates an error response with the given code and message.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message}}
}

// Common error codes
const (
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeConflict    = "CONFLICT"
	ErrorCodeInternal    = "INTERNAL_ERROR"
	ErrorCodeRateLimited = "RATE_LIMITED"
)

// UserResponse is the body of a successful user creation.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// ExerciseResponse is the body of a successful exercise creation.
// UserID is serialized as "_id": the value is the owning user's id, not the
// exercise's. Long-standing contract with existing clients; do not change.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	UserID      string `json:"_id"`
}

// LogEntry is one exercise inside a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the body of a successful logs query. Count always equals
// len(Log) after the limit is applied.
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	UserID   string     `json:"_id"`
	Log      []LogEntry `json:"log"`
}
