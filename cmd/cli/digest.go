package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Post the news digest to Slack once",
	Long: `Search every keyword in DIGEST_KEYWORDS and post each result to the
configured Slack channel. Failing keywords are reported after the rest
have been processed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := loadApp()
		if err != nil {
			return err
		}

		if app.Digest == nil {
			return errors.New("no digest keywords configured; set DIGEST_KEYWORDS")
		}

		if err := app.Digest.Run(cmd.Context()); err != nil {
			return fmt.Errorf("digest finished with errors: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Digest sent for %d keywords\n", len(app.Config.DigestKeywords))
		return nil
	},
}
