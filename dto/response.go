package dto

// ErrorResponseDTO is the common error response shape. Error carries the
// underlying detail on server faults and is omitted otherwise.
type ErrorResponseDTO struct {
	Msg   string `json:"msg" example:"Blog not found"`
	Error string `json:"error,omitempty"`
}

// MessageResponseDTO is a plain confirmation message.
type MessageResponseDTO struct {
	Msg string `json:"msg" example:"Blog deleted"`
}
