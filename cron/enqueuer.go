package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"carelink/config"
	"carelink/models"
	"carelink/services/reminder"

	"github.com/hibiken/asynq"
)

// AsynqEnqueuer implements reminder.TaskEnqueuer over the asynq client.
type AsynqEnqueuer struct {
	client *asynq.Client
}

func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

func (e *AsynqEnqueuer) Enqueue(ctx context.Context, payload models.ReminderPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	_, err = e.client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	return err
}

// StartReminderScheduler scans for due reminders once a minute. The scan runs
// in its own goroutine until the context is cancelled.
func StartReminderScheduler(ctx context.Context, svc reminder.ReminderService) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				n, err := svc.EnqueueDue(ctx, now)
				if err != nil {
					log.Printf("[ReminderScheduler] scan failed: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("[ReminderScheduler] enqueued %d reminder(s)", n)
				}
			}
		}
	}()
}
