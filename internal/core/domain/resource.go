package domain

import "errors"

var ErrResourceNotFound = errors.New("resource not found")

// Resource is a saved reading/learning item (article, book or tool).
type Resource struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Label  string `json:"label"`
	Type   string `json:"type"`   // article | book | tool
	URL    string `json:"url"`
	Status string `json:"status"` // to_read | reading | done
}
