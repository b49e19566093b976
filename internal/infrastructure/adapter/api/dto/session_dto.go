package dto

// SessionResponse identifies a session
type SessionResponse struct {
	ID string `json:"id"`
}

// NodeRequest carries a node to set within a session
type NodeRequest struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// OperationResponse reports the status of a session operation
type OperationResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ThresholdsResponse reports the log thresholds of both sinks
type ThresholdsResponse struct {
	Console string `json:"console"`
	Syslog  string `json:"syslog"`
}
