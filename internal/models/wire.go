package models

// NATS request from a support frontend
type ChainRequest struct {
	RequestID string `json:"request_id"`
	Query     string `json:"query"`
}

// NATS response to a support frontend
type ChainResponse struct {
	RequestID    string              `json:"request_id"`
	Status       string              `json:"status"` // "OK", "ERROR"
	Intent       *IntentResult       `json:"intent,omitempty"`
	Candidates   []CategoryCandidate `json:"candidates,omitempty"`
	Selection    *SelectionResult    `json:"selection,omitempty"`
	Details      *ExtractedDetails   `json:"details,omitempty"`
	Response     string              `json:"response"`
	Checklist    *Checklist          `json:"checklist,omitempty"`
	Cached       bool                `json:"cached"`
	ErrorCode    *string             `json:"error_code,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
}

// Status constants
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Error codes
const (
	ErrorInvalidInput = "INVALID_INPUT"
	ErrorInternal     = "INTERNAL_ERROR"
)
