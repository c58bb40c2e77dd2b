package model

// Article is a headline returned for a search.
type Article struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source,omitempty"`
}
