// scheduler/scheduler.go
package scheduler

import (
	"context"
	"time"

	"lostandfound/config"
	"lostandfound/livefeed"
	"lostandfound/logger"
	"lostandfound/store"

	"github.com/robfig/cron/v3"
)

// Start registers the daily maintenance job and starts the cron runner.
func Start(reports store.ReportStore, feed *livefeed.Publisher, cfg *config.Config, log *logger.Logger) *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// 06:00 every day
	_, err := c.AddFunc("0 0 6 * * *", func() {
		DailySummaryJob(reports, feed, cfg.FeedRetentionDays, log)
	})
	if err != nil {
		log.Fatal("Failed to add cron job", "error", err)
	}

	c.Start()
	log.Info("scheduler started")
	return c
}

// DailySummaryJob logs per-type report counts for the last 24 hours and
// prunes live-feed documents past the retention window.
func DailySummaryJob(reports store.ReportStore, feed *livefeed.Publisher, retentionDays int, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	counts, err := reports.CountByTypeSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		log.Error("daily summary failed", "error", err)
	} else {
		total := int64(0)
		for _, n := range counts {
			total += n
		}
		log.Info("daily report summary", "last_24h_total", total, "by_type", counts)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	pruned, err := feed.Prune(ctx, cutoff)
	if err != nil {
		log.Error("live feed prune failed", "error", err)
		return
	}
	if pruned > 0 {
		log.Info("live feed pruned", "deleted", pruned, "cutoff", cutoff)
	}
}
