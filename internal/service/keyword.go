package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pep299/just-news/internal/model"
)

// CountOccurrences counts case-insensitive, non-overlapping occurrences of
// keyword in text. An empty keyword never matches.
func CountOccurrences(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	lower := cases.Lower(language.Und)
	return strings.Count(lower.String(text), lower.String(keyword))
}

// KeywordFrequency sums CountOccurrences over the article titles
func KeywordFrequency(articles []model.Article, keyword string) int {
	total := 0
	for _, article := range articles {
		total += CountOccurrences(article.Title, keyword)
	}
	return total
}
