// Package bootstrap concentra a inicialização compartilhada entre a API e o importador
package bootstrap

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/market-intelligence-api/infrastructure/cache"
	"github.com/vfg2006/market-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/market-intelligence-api/infrastructure/dataset"
	"github.com/vfg2006/market-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/market-intelligence-api/internal/analytics"
	"github.com/vfg2006/market-intelligence-api/internal/config"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
)

// ConfigureLogger configura o formato e o nível dos logs
func ConfigureLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if level == "" {
		return
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)
}

// Postgres cria uma conexão com o banco de dados
func Postgres(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}

// DataSources reúne os repositórios da fonte configurada
type DataSources struct {
	RawRows   repository.RawRowRepository
	Snapshots repository.MonthSnapshotRepository
	close     func() error
}

func (d *DataSources) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// NewDataSources abre o PostgreSQL ou o documento JSON conforme DATASET_SOURCE
func NewDataSources(ctx context.Context, cfg *config.Config) (*DataSources, error) {
	if cfg.Dataset.Source == config.DatasetSourceFile {
		source := dataset.NewFileSource(cfg.Dataset.Path)
		logrus.WithField("path", cfg.Dataset.Path).Info("Usando documento JSON como fonte de dados")
		return &DataSources{RawRows: source, Snapshots: source}, nil
	}

	conn, err := Postgres(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &DataSources{
		RawRows:   repository.NewRawRowRepository(conn),
		Snapshots: repository.NewMonthSnapshotRepository(conn),
		close:     conn.Close,
	}, nil
}

// NewEngine aplica os limites configurados ao motor de análise
func NewEngine(cfg config.Analytics) *analytics.Engine {
	return analytics.NewEngine(
		analytics.WithDominanceThreshold(cfg.DominanceThreshold),
		analytics.WithTopDecileFraction(cfg.TopDecileFraction),
		analytics.WithParallelReducers(cfg.ParallelReducers),
	)
}

// NewAggregateCache retorna nil quando o Redis está desabilitado ou inacessível
func NewAggregateCache(ctx context.Context, cfg config.Redis) intelligence.AggregateCache {
	if !cfg.Enabled {
		logrus.Info("Cache de agregados desabilitado")
		return nil
	}

	client := cache.NewRedisClient(cache.RedisConfig{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	aggregateCache := cache.NewAggregateCache(client, cfg.CacheTTL)
	if err := aggregateCache.HealthCheck(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de agregados")
		client.Close()
		return nil
	}

	logrus.WithField("addr", cfg.Addr).Info("Cache de agregados conectado ao Redis")
	return aggregateCache
}
