// Package dto defines data transfer objects for API requests and responses.
package dto

// ImportResponse represents the result of a successful CSV import.
type ImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}
