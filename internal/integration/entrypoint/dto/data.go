package dto

// ReseedResponse reports the record counts after reseeding.
type ReseedResponse struct {
	Message string         `json:"message"`
	Counts  map[string]int `json:"counts"`
}
