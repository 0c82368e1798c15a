package cron

import (
	"context"
	"log"
	"time"

	"ard/config"
	adsRepo "ard/database/repository/ads"

	"github.com/hibiken/asynq"
)

const TypePurgeExpired = "ads:purge_expired"

// InitPurgeWorker runs the expired-ad sweeper in the background. Expiry stays
// passive for readers (List filters and purges on its own); this worker only
// keeps the collection from growing unbounded between reads.
func InitPurgeWorker(repo adsRepo.AdRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePurgeExpired, handlePurgeTask(repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[PurgeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PurgeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PurgeWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Enqueue a sweep every hour.
	go func() {
		client := asynq.NewClient(redisOpts)
		defer client.Close()

		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			task := asynq.NewTask(TypePurgeExpired, nil)
			if _, err := client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
				log.Printf("[PurgeWorker] failed to enqueue purge task: %v", err)
			}
		}
	}()
}

func handlePurgeTask(repo adsRepo.AdRepository) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		removed, err := repo.DeleteExpired(time.Now().UnixMilli())
		if err != nil {
			return err
		}
		if removed > 0 {
			log.Printf("[PurgeWorker] purged %d expired ads", removed)
		}
		return nil
	}
}
