package models

// ErrorMessageResponse is the structured failure body returned by every endpoint
type ErrorMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ValidationErrorResponse carries the enumerated field errors for a rejected request
type ValidationErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// APIResponse is the common success envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   int         `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthCheckResponse returns if the service is alive
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
