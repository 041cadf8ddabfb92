package dto

// Status values used on the wire.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StatusResponse is the wire shape of every mutating endpoint: a status
// marker plus a human-readable message.
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Student added successfully!"`
}

// NewSuccessResponse builds a success response
func NewSuccessResponse(message string) StatusResponse {
	return StatusResponse{Status: StatusSuccess, Message: message}
}

// NewErrorResponse builds an error response
func NewErrorResponse(message string) StatusResponse {
	return StatusResponse{Status: StatusError, Message: message}
}
