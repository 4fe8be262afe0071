package jobs

import (
	"context"
	"log/slog"
	"time"

	"coffeequeue/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// QueueMonitorJob periodically samples the barista queue and logs its depth
// so operators can spot a backed-up counter without opening the UI.
// It only reads; all state mutation stays in the synchronous request path.
type QueueMonitorJob struct {
	handler queries.GetQueueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueMonitorJob creates the monitor job. It runs the queue query every
// 30 seconds once started.
func NewQueueMonitorJob(handler queries.GetQueueQueryHandler, logger *slog.Logger) *QueueMonitorJob {
	return &QueueMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "queue_monitor_job"),
	}
}

// Start begins the queue monitor job on its 30-second schedule.
func (j *QueueMonitorJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		resp, err := j.handler.Handle(ctx, queries.NewGetQueueQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue monitor sample failed", "error", err)
			return
		}

		attrs := []any{
			"active", len(resp.Active),
			"recent_done", len(resp.RecentDone),
		}
		if oldest := oldestWait(resp.Active); oldest > 0 {
			attrs = append(attrs, "oldest_wait", oldest.Round(time.Second).String())
		}
		j.logger.InfoContext(ctx, "Queue depth", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue monitor job started (sampling every 30 seconds)")
	return nil
}

// Stop stops the queue monitor job.
func (j *QueueMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue monitor job stopped")
}

// oldestWait returns how long the longest-waiting active order has been in
// the queue, or 0 when the queue is empty.
func oldestWait(active []queries.OrderResponse) time.Duration {
	var wait time.Duration
	for _, o := range active {
		if d := time.Since(o.CreatedAt); d > wait {
			wait = d
		}
	}
	return wait
}
