// models/error_response.go
package models

import "time"

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	ErrorCode string    `json:"errorCode"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
