package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hogarlink/config"
	"hogarlink/models"
	"hogarlink/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReceiptSend = "receipt:send"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ReceiptEnqueuer queues booking receipts for background delivery.
type ReceiptEnqueuer struct {
	client *asynq.Client
}

func NewReceiptEnqueuer() *ReceiptEnqueuer {
	return &ReceiptEnqueuer{client: asynq.NewClient(redisOpts())}
}

func (e *ReceiptEnqueuer) EnqueueReceipt(ctx context.Context, booking models.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt payload: %w", err)
	}
	task := asynq.NewTask(TypeReceiptSend, payload)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue receipt task: %w", err)
	}
	return nil
}

// InitReceiptWorker runs the async worker in background.
func InitReceiptWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReceiptSend, handleReceiptTask(notifSvc))

	go func() {
		log.Println("[ReceiptWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReceiptWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReceiptWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReceiptTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var booking models.Booking
		if err := json.Unmarshal(task.Payload(), &booking); err != nil {
			log.Printf("[ReceiptWorker] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.SendBookingReceipt(ctx, booking); err != nil {
			log.Printf("[ReceiptWorker] failed to send receipt for booking %s: %v", booking.ID, err)
			return err
		}
		return nil
	}
}
