package di

import (
	"fmt"

	"RiverSight/internal/domain/repository"
	"RiverSight/internal/domain/service"
	"RiverSight/internal/handler/api"
	internalrepo "RiverSight/internal/repository"
	"RiverSight/internal/service/yahoo"
	"RiverSight/internal/services/narrative"
	"RiverSight/internal/usecase"
	pkgcache "RiverSight/pkg/cache"
	pkgch "RiverSight/pkg/clickhouse"
	"RiverSight/pkg/config"
	pkgkafka "RiverSight/pkg/kafka"
	applogger "RiverSight/pkg/logger"
	"RiverSight/pkg/metrics"
	"RiverSight/pkg/server"
)

// ProvideLogger creates the structured application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// Infra bundles long-lived clients that need closing on shutdown.
type Infra struct {
	Cache    pkgcache.Service
	CH       *pkgch.Client
	Producer *pkgkafka.Producer
}

// Close releases every held client. The first error wins.
func (i *Infra) Close() error {
	var first error
	if i.Cache != nil {
		if err := i.Cache.Close(); err != nil && first == nil {
			first = err
		}
	}
	if i.Producer != nil {
		if err := i.Producer.Close(); err != nil && first == nil {
			first = err
		}
	}
	if i.CH != nil {
		if err := i.CH.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ProvideInfra builds the cache layers and optional broker clients.
func ProvideInfra(cfg *config.Config) (*Infra, error) {
	infra := &Infra{}

	memory := pkgcache.NewMemoryCache(pkgcache.WithMaxSize(cfg.Cache.MemoryMaxSize))
	if cfg.Cache.Redis.Enabled {
		remote, err := pkgcache.NewRedisCache(
			pkgcache.WithAddress(cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
			pkgcache.WithPassword(cfg.Cache.Redis.Password),
			pkgcache.WithDB(cfg.Cache.Redis.DB),
			pkgcache.WithPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		infra.Cache = pkgcache.NewLayeredCache(memory, remote)
	} else {
		infra.Cache = memory
	}

	if cfg.Provider.Type == "clickhouse" {
		ch, err := pkgch.NewClient(
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
		)
		if err != nil {
			_ = infra.Close()
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}
		infra.CH = ch
	}

	if cfg.Kafka.Enabled {
		producer, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(cfg.Kafka.Brokers),
			pkgkafka.WithCompression(cfg.Kafka.Compression),
			pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
			pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
			pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		)
		if err != nil {
			_ = infra.Close()
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		infra.Producer = producer
	}

	return infra, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.NewRecorder()
}

// ProvideHistorySource selects the configured provider and wraps it with the
// response cache.
func ProvideHistorySource(cfg *config.Config, infra *Infra, l *applogger.Logger) (repository.HistorySource, error) {
	var source repository.HistorySource
	switch cfg.Provider.Type {
	case "clickhouse":
		source = internalrepo.NewCHHistoryStore(infra.CH, l)
	case "yahoo":
		source = yahoo.NewClient(yahoo.Config{
			BaseURL:      cfg.Yahoo.BaseURL,
			UserAgent:    cfg.Yahoo.UserAgent,
			Timeout:      cfg.Yahoo.Timeout,
			RateCapacity: cfg.Yahoo.RateCapacity,
			RateRefill:   cfg.Yahoo.RateRefill,
		}, l)
	default:
		return nil, fmt.Errorf("unknown provider type %q", cfg.Provider.Type)
	}

	return internalrepo.NewCachedHistorySource(
		source,
		infra.Cache,
		cfg.Provider.Cache.HistoryTTL,
		cfg.Provider.Cache.FundamentalsTTL,
		l,
	), nil
}

// ProvidePublisher creates the Kafka summary publisher; nil when disabled.
func ProvidePublisher(cfg *config.Config, infra *Infra, l *applogger.Logger) repository.SummaryPublisher {
	if !cfg.Kafka.Enabled || infra.Producer == nil {
		return nil
	}
	return internalrepo.NewKafkaSummaryPublisher(infra.Producer, cfg.Kafka.Topic, l)
}

// ProvideNarrative creates the commentary generator; nil when disabled.
func ProvideNarrative(cfg *config.Config, l *applogger.Logger) (service.NarrativeGenerator, error) {
	if !cfg.Narrative.Enabled {
		return nil, nil
	}
	return narrative.NewClaudeGenerator(narrative.Config{
		APIKey:      cfg.Narrative.APIKey,
		Model:       cfg.Narrative.Model,
		MaxTokens:   cfg.Narrative.MaxTokens,
		Temperature: cfg.Narrative.Temperature,
		Timeout:     cfg.Narrative.Timeout,
	}, l)
}

// ProvideAnalyzer creates the analysis use case.
func ProvideAnalyzer(
	source repository.HistorySource,
	publisher repository.SummaryPublisher,
	m repository.Metrics,
	gen service.NarrativeGenerator,
	l *applogger.Logger,
) *usecase.RiverAnalyzer {
	return usecase.NewRiverAnalyzer(source, publisher, m, gen, l)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(l *applogger.Logger, analyzer *usecase.RiverAnalyzer) *api.RiverEchoHandler {
	return api.NewRiverEchoHandler(l, analyzer)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler *api.RiverEchoHandler, infra *Infra, l *applogger.Logger) *server.App {
	return server.New(cfg, handler, infra, l)
}
