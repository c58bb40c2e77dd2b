package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pep299/just-news/internal/model"
	"github.com/pep299/just-news/internal/service"
)

const separator = "*****************************************************"

var searchCmd = &cobra.Command{
	Use:   "search <keyword>...",
	Short: "Search the latest news for a keyword",
	Long: `Search the latest news for a keyword. Multiple arguments are joined
with spaces into a single keyword.

Examples:
  justnews search NASA
  justnews search climate change --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		app, _, err := loadApp()
		if err != nil {
			return err
		}

		news, err := app.News.Search(cmd.Context(), strings.Join(args, " "))
		if errors.Is(err, service.ErrEmptyKeyword) {
			return err
		}
		if err != nil {
			return errors.New(service.FailureMessage)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), news)
		}
		printNews(cmd.OutOrStdout(), news)
		return nil
	},
}

func init() {
	searchCmd.Flags().Bool("json", false, "Output in JSON format")
}

// printNews writes the summary, the headline frequency and one numbered
// line per article.
func printNews(w io.Writer, news *model.NewsResponse) {
	fmt.Fprintln(w, news.Summary)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Keyword frequency: %d\n", news.KeywordFrequency)
	fmt.Fprintf(w, "\n%s\n\n", separator)

	for i, article := range news.Articles {
		fmt.Fprintln(w, i+1, article.Title, article.URL)
		fmt.Fprintf(w, "\n%s\n\n", separator)
	}
}

func printJSON(w io.Writer, news *model.NewsResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(news)
}
