package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/market-intelligence-api/internal/api"
	"github.com/vfg2006/market-intelligence-api/internal/bootstrap"
	"github.com/vfg2006/market-intelligence-api/internal/config"
	"github.com/vfg2006/market-intelligence-api/internal/scheduler"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
)

func main() {
	bootstrap.ConfigureLogger("")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	bootstrap.ConfigureLogger(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sources, err := bootstrap.NewDataSources(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir a fonte de dados")
	}
	defer sources.Close()

	engine := bootstrap.NewEngine(cfg.Analytics)
	aggregateCache := bootstrap.NewAggregateCache(ctx, cfg.Redis)

	intelligenceService := intelligence.NewService(sources.RawRows, sources.Snapshots, aggregateCache, engine)

	// Carrega o conjunto na subida para que a primeira consulta não pague a leitura
	if _, err := intelligenceService.GetFilterOptions(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao carregar o conjunto de dados na inicialização")
	}

	authenticator := authenticating.NewService(cfg)

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		sources.RawRows,
		sources.Snapshots,
		intelligenceService,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconstrução de snapshots")
	} else {
		logrus.Info("Agendador de reconstrução de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		intelligenceService,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
