package model

// NewsResponse is the result of a single keyword search.
type NewsResponse struct {
	Summary          string    `json:"summary"`
	Articles         []Article `json:"articles"`
	KeywordFrequency int       `json:"keywordFrequency"`
}
