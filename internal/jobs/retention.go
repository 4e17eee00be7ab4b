package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"pawhaven/internal/repository"
)

// ScheduleRetention purges read notifications older than the retention
// window every night. Unread notifications are never touched.
func ScheduleRetention(c *cron.Cron, notifRepo repository.NotificationRepository, retention time.Duration) error {
	_, err := c.AddFunc("30 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		cutoff := time.Now().Add(-retention)
		purged, err := notifRepo.DeleteReadBefore(ctx, cutoff)
		if err != nil {
			log.Printf("notification retention purge failed: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("notification retention purged %d read notifications older than %s", purged, cutoff.Format(time.RFC3339))
		}
	})
	return err
}
