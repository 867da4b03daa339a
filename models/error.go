package models

// Error is the body of every error response.
type Error struct {
	Message string `json:"error"`
}
