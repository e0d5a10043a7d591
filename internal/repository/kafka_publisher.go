package repository

import (
	"context"

	"RiverSight/internal/domain/models"
	pkgkafka "RiverSight/pkg/kafka"
	applogger "RiverSight/pkg/logger"
)

// KafkaSummaryPublisher implements SummaryPublisher on a Kafka topic. Messages
// are keyed by symbol so each instrument stays on one partition.
type KafkaSummaryPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	l        *applogger.Logger
}

func NewKafkaSummaryPublisher(producer *pkgkafka.Producer, topic string, l *applogger.Logger) *KafkaSummaryPublisher {
	return &KafkaSummaryPublisher{producer: producer, topic: topic, l: l}
}

func (p *KafkaSummaryPublisher) PublishSummary(ctx context.Context, s models.AnalysisSummary) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(s.Symbol), s); err != nil {
		p.l.Error("publish summary failed",
			applogger.String("topic", p.topic),
			applogger.String("symbol", s.Symbol),
			applogger.Error(err),
		)
		return err
	}
	return nil
}

func (p *KafkaSummaryPublisher) Close() error {
	return p.producer.Close()
}
