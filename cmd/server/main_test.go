package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintHelpListsEnvironment(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf)
	help := buf.String()

	for _, name := range []string{
		"SEARCH_PROVIDER", "GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL", "NEWSAPI_KEY",
		"PORT", "HOST", "DIGEST_KEYWORDS", "DIGEST_SCHEDULE", "DIGEST_TRIGGER_TOKEN",
		"SLACK_BOT_TOKEN", "SLACK_CHANNEL", "LOG_LEVEL", "LOG_FORMAT",
	} {
		assert.Contains(t, help, name)
	}

	assert.Contains(t, help, "gemini (default), newsapi or googlenews")
	assert.Contains(t, help, "-version")
}
