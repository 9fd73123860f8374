package api

import (
	"encoding/json"

	"github.com/villert/popthings/internal/history"
)

// ConvertRequest is the request body for converting a template document.
// Placeholders maps declared placeholder names to their substitution
// values; it may be omitted for documents without a placeholder line.
type ConvertRequest struct {
	Content      string            `json:"content"`
	Placeholders map[string]string `json:"placeholders,omitempty"`
}

// ConvertResponse carries the Things JSON payload and the launch URL.
type ConvertResponse struct {
	Items    json.RawMessage `json:"items"`
	URL      string          `json:"url"`
	Projects int             `json:"projects"`
	ToDos    int             `json:"todos"`
}

// HistoryResponse wraps the recent conversion log.
type HistoryResponse struct {
	Conversions []history.Entry `json:"conversions"`
	Total       int             `json:"total"`
}
