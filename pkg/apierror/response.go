package apierror

// Response is the JSON body for every error the API returns. All five
// keys are always serialized; Details and RequestID render as null when
// absent.
type Response struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	ErrorCode string         `json:"error_code"`
	Details   map[string]any `json:"details"`
	RequestID *string        `json:"request_id"`
}

// NewResponse creates an error response body. Success is always false.
func NewResponse(message, errorCode string) Response {
	return Response{
		Success:   false,
		Message:   message,
		ErrorCode: errorCode,
	}
}

// WithDetails returns a copy carrying the given details payload.
func (r Response) WithDetails(details map[string]any) Response {
	r.Details = details
	return r
}

// WithRequestID returns a copy carrying a request id for tracing.
func (r Response) WithRequestID(requestID string) Response {
	r.RequestID = &requestID
	return r
}
