package outbox

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=outbox_processor.go -destination=../mock/outbox/outbox_processor_mock.go -package=mock

type Service interface {
	Start(ctx context.Context)
}

type Processor struct {
	repo   Repository
	writer *kafka.Writer
	logger *zap.Logger
}

func NewProcessor(repo Repository, writer *kafka.Writer, logger *zap.Logger) *Processor {
	return &Processor{
		repo:   repo,
		writer: writer,
		logger: logger,
	}
}

// Start relays pending outbox rows to kafka until ctx is cancelled.
func (p *Processor) Start(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.relayBatch(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Processor) relayBatch(ctx context.Context) {
	events, err := p.repo.ListPending(ctx, 10)
	if err != nil {
		p.logger.Error("outbox fetch error", zap.Error(err))
		return
	}

	for _, e := range events {
		err := p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(e.AggregateID.String()),
			Value: e.Payload,
		})
		if err != nil {
			p.logger.Error("kafka publish failed",
				zap.String("event_id", e.ID.String()),
				zap.String("event_type", e.EventType),
				zap.Error(err))
			_ = p.repo.MarkFailed(ctx, e.ID)
			continue
		}

		if err := p.repo.MarkSent(ctx, e.ID); err != nil {
			p.logger.Error("outbox mark sent failed",
				zap.String("event_id", e.ID.String()), zap.Error(err))
		}
	}
}
