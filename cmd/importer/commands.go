package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/market-intelligence-api/infrastructure/dataset"
	"github.com/vfg2006/market-intelligence-api/infrastructure/migration"
	"github.com/vfg2006/market-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/market-intelligence-api/internal/bootstrap"
	"github.com/vfg2006/market-intelligence-api/internal/config"
	"github.com/vfg2006/market-intelligence-api/internal/scheduler"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

const batchIDLength = 12

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "importer",
		Short:         "Carrega o conjunto de dados de inteligência de mercado no PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newLoadCmd(), newSnapshotsCmd())
	return root
}

func newLoadCmd() *cobra.Command {
	var (
		file      string
		batchSize int
		keep      bool
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Importa as linhas brutas e os snapshots de um documento JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if batchSize <= 0 {
				batchSize = cfg.Dataset.ImportBatchSize
			}

			return runLoad(cmd.Context(), cfg, file, batchSize, keep)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Caminho do documento JSON")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Linhas por INSERT (padrão DATASET_IMPORT_BATCH_SIZE)")
	cmd.Flags().BoolVar(&keep, "keep", false, "Mantém as linhas já importadas")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSnapshotsCmd() *cobra.Command {
	var lookBack int

	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Reconstrói os snapshots mensais a partir das linhas importadas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("lookback") {
				cfg.SnapshotSync.MonthLookBack = lookBack
			}

			return runSnapshots(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&lookBack, "lookback", 0, "Quantidade de meses recentes a reconstruir (0 = todos)")

	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração")
	}

	bootstrap.ConfigureLogger(cfg.App.LogLevel)
	return cfg, nil
}

func runLoad(ctx context.Context, cfg *config.Config, file string, batchSize int, keep bool) error {
	startTime := time.Now()

	document, err := dataset.Load(file)
	if err != nil {
		return err
	}

	conn, err := bootstrap.Postgres(ctx, cfg.Database)
	if err != nil {
		return errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := migration.Apply(ctx, conn); err != nil {
		return err
	}

	rawRowRepo := repository.NewRawRowRepository(conn)
	snapshotRepo := repository.NewMonthSnapshotRepository(conn)

	if !keep {
		deleted, err := rawRowRepo.DeleteAll(ctx)
		if err != nil {
			return err
		}
		logrus.WithField("rows", deleted).Info("Linhas anteriores removidas")
	}

	batchID, err := utils.GenerateID(batchIDLength)
	if err != nil {
		return errors.Wrap(err, "erro ao gerar identificador do lote")
	}

	inserted, err := rawRowRepo.SaveBatch(ctx, batchID, document.RawRows, batchSize)
	if err != nil {
		return err
	}

	for label, snapshot := range document.MonthlySnapshots {
		if err := snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
			return errors.Wrapf(err, "erro ao salvar snapshot %s", label)
		}
	}

	logrus.WithFields(logrus.Fields{
		"batch_id":  batchID,
		"rows":      inserted,
		"snapshots": len(document.MonthlySnapshots),
		"duration":  time.Since(startTime).String(),
	}).Info("Importação concluída")

	return nil
}

func runSnapshots(ctx context.Context, cfg *config.Config) error {
	sources, err := bootstrap.NewDataSources(ctx, cfg)
	if err != nil {
		return err
	}
	defer sources.Close()

	service := intelligence.NewService(sources.RawRows, sources.Snapshots, nil, bootstrap.NewEngine(cfg.Analytics))
	syncService := scheduler.NewSnapshotSyncService(sources.RawRows, sources.Snapshots, service, cfg)

	result, err := syncService.Sync(ctx)
	if err != nil {
		return err
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d de %d meses falharam na reconstrução", result.Failed, len(result.Months))
	}

	logrus.WithFields(logrus.Fields{
		"months": len(result.Months),
		"saved":  result.Saved,
	}).Info("Snapshots reconstruídos")

	return nil
}
