// Package migration cria as tabelas usadas pelos repositórios
package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/vfg2006/market-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/market-intelligence-api/pkg/log"
)

//go:embed schema.sql
var schema string

// Apply executa o schema dentro de uma transação. Todas as instruções são
// idempotentes, então pode rodar a cada importação.
func Apply(ctx context.Context, conn postgres.Conn) error {
	logger := log.ForContext(ctx).WithComponent("migration")

	if err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	}); err != nil {
		return fmt.Errorf("erro ao aplicar schema: %w", err)
	}

	logger.Info("Schema aplicado com sucesso")
	return nil
}
