package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sudono1/gamesucks-api/internal/outbox"
)

// RunWorker menjalankan relay outbox -> kafka sampai dapat SIGINT/SIGTERM.
func RunWorker(logger *zap.Logger) error {
	log.Println("[WORKER] Starting outbox processor...")

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "transaction.events"
	}
	kafkaWriter, err := ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), topic, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := outbox.NewRepository(db)
	processor := outbox.NewProcessor(outboxRepo, kafkaWriter, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go processor.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[WORKER] Stopped")

	return nil
}
