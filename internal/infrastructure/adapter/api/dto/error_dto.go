package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorRecord is one recorded error of a session
type ErrorRecord struct {
	Code     int    `json:"code"`
	CodeText string `json:"codeText"`
	Path     string `json:"path,omitempty"`
	Message  string `json:"message"`
}

// PendingErrorsResponse lists the pending errors of a session
type PendingErrorsResponse struct {
	Errors []ErrorRecord `json:"errors"`
}
