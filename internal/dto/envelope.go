package dto

// ListResponse is the `{success, count, data}` envelope used by the banking
// reports and the employee list.
type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// NewListResponse wraps rows in a success envelope.
func NewListResponse(count int, data interface{}) ListResponse {
	return ListResponse{Success: true, Count: count, Data: data}
}

// MessageResponse is the `{success, message}` envelope used for not-found
// and other message-only outcomes.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the `{success, error}` envelope used for client and
// server failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse wraps an error message in a failure envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
