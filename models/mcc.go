package models

// MCCEntry is one merchant category code and its description.
type MCCEntry struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}
