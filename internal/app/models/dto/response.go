package dto

// Response is the standard envelope: {message, data?, list?} on success,
// {message} alone on failure. Clients branch on the HTTP status, not on
// the message text.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	List    interface{} `json:"list,omitempty"`
}

// Error builds a failure envelope carrying only a message
func Error(message string) Response {
	return Response{Message: message}
}
