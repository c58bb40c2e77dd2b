package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pep299/just-news/internal/repository"
)

// Digest searches a fixed list of keywords and posts each result to Slack
type Digest struct {
	news     Searcher
	slack    repository.SlackRepository
	keywords []string
	log      logrus.FieldLogger
}

func NewDigest(news Searcher, slack repository.SlackRepository, keywords []string, log logrus.FieldLogger) *Digest {
	return &Digest{
		news:     news,
		slack:    slack,
		keywords: keywords,
		log:      log,
	}
}

// Run processes the keywords one at a time. A failing keyword does not stop
// the rest; all failures are returned joined.
func (d *Digest) Run(ctx context.Context) error {
	startTime := time.Now()
	var errs []error
	sent := 0

	d.log.WithField("keywords", len(d.keywords)).Info("Digest run started")

	for _, keyword := range d.keywords {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		logger := d.log.WithField("keyword", keyword)

		resp, err := d.news.Search(ctx, keyword)
		if err != nil {
			logger.WithError(err).Error("Digest search failed")
			errs = append(errs, fmt.Errorf("searching %q: %w", keyword, err))
			continue
		}

		if err := d.slack.SendDigest(ctx, keyword, resp); err != nil {
			logger.WithError(err).Error("Digest Slack notification failed")
			errs = append(errs, fmt.Errorf("notifying %q: %w", keyword, err))
			continue
		}
		sent++
	}

	d.log.WithFields(logrus.Fields{
		"sent":        sent,
		"errors":      len(errs),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Digest run completed")

	return errors.Join(errs...)
}

// NewDigestScheduler registers d.Run on the standard cron spec. Runs never
// overlap; a tick that arrives while a run is in progress is skipped.
// The caller starts and stops the returned scheduler.
func NewDigestScheduler(ctx context.Context, d *Digest, spec string, log *logrus.Logger) (*cron.Cron, error) {
	cronLogger := cron.PrintfLogger(log)
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	_, err := c.AddFunc(spec, func() {
		if err := d.Run(ctx); err != nil {
			log.WithError(err).Warn("Scheduled digest finished with errors")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scheduling digest %q: %w", spec, err)
	}

	return c, nil
}
