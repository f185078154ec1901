// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/market-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

const (
	rawRowsTable = "raw_rows"

	defaultBatchSize = 500
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var rawRowColumns = []string{
	"rr.month_key",
	"rr.sort_index",
	"rr.user_id",
	"rr.country",
	"rr.city",
	"rr.salon_type",
	"rr.employee_count",
	"rr.brand",
	"rr.visits",
	"rr.services",
	"rr.cost",
	"rr.grams",
	"rr.per_service_type",
	"rr.declared_prices",
}

type RawRowRepository interface {
	ListRows(ctx context.Context) ([]domain.RawRow, error)
	ListRowsByMonths(ctx context.Context, months []string) ([]domain.RawRow, error)
	SaveBatch(ctx context.Context, batchID string, rows []domain.RawRow, batchSize int) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type rawRowRepository struct {
	conn *postgres.Connection
}

func NewRawRowRepository(conn *postgres.Connection) RawRowRepository {
	return &rawRowRepository{
		conn: conn,
	}
}

func (r *rawRowRepository) ListRows(ctx context.Context) ([]domain.RawRow, error) {
	query := squirrel.
		Select(rawRowColumns...).
		From(rawRowsTable + " rr").
		OrderBy("rr.sort_index ASC", "rr.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRows(ctx, query)
}

// ListRowsByMonths retorna apenas as linhas dos meses informados
func (r *rawRowRepository) ListRowsByMonths(ctx context.Context, months []string) ([]domain.RawRow, error) {
	if len(months) == 0 {
		return []domain.RawRow{}, nil
	}

	query := squirrel.
		Select(rawRowColumns...).
		From(rawRowsTable + " rr").
		Where(squirrel.Expr("rr.month_key = ANY(?)", pq.Array(months))).
		OrderBy("rr.sort_index ASC", "rr.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRows(ctx, query)
}

func (r *rawRowRepository) queryRows(ctx context.Context, query squirrel.SelectBuilder) ([]domain.RawRow, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.RawRow, 0)
	for rows.Next() {
		row, err := r.scanRawRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha bruta: %w", err)
		}
		result = append(result, *row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// SaveBatch insere as linhas em lotes dentro de uma única transação.
// Retorna o número de linhas inseridas.
func (r *rawRowRepository) SaveBatch(ctx context.Context, batchID string, rows []domain.RawRow, batchSize int) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	inserted := 0
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(rows); start += batchSize {
			end := start + batchSize
			if end > len(rows) {
				end = len(rows)
			}

			n, err := r.insertChunk(ctx, tx, batchID, rows[start:end])
			if err != nil {
				return err
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *rawRowRepository) insertChunk(ctx context.Context, q postgres.Queryer, batchID string, rows []domain.RawRow) (int, error) {
	query := squirrel.StatementBuilder.
		Insert(rawRowsTable).
		Columns(
			"import_batch_id",
			"month_key",
			"sort_index",
			"user_id",
			"country",
			"city",
			"salon_type",
			"employee_count",
			"brand",
			"visits",
			"services",
			"cost",
			"grams",
			"per_service_type",
			"declared_prices",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		perServiceTypeJSON, err := json.Marshal(row.PerServiceType)
		if err != nil {
			return 0, fmt.Errorf("erro ao serializar per_service_type para JSON: %w", err)
		}

		declaredPricesJSON, err := json.Marshal(row.DeclaredPrices)
		if err != nil {
			return 0, fmt.Errorf("erro ao serializar declared_prices para JSON: %w", err)
		}

		query = query.Values(
			batchID,
			row.MonthKey,
			row.SortIndex,
			row.UserID,
			row.Country,
			row.City,
			row.SalonType,
			row.EmployeeCount,
			row.Brand,
			row.Visits,
			row.Services,
			row.Cost,
			row.Grams,
			perServiceTypeJSON,
			declaredPricesJSON,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return len(rows), nil
}

func (r *rawRowRepository) DeleteAll(ctx context.Context) (int64, error) {
	sqlQuery, args, err := squirrel.Delete(rawRowsTable).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *rawRowRepository) scanRawRow(rows *sql.Rows) (*domain.RawRow, error) {
	row := &domain.RawRow{}
	var perServiceTypeJSON, declaredPricesJSON []byte

	err := rows.Scan(
		&row.MonthKey,
		&row.SortIndex,
		&row.UserID,
		&row.Country,
		&row.City,
		&row.SalonType,
		&row.EmployeeCount,
		&row.Brand,
		&row.Visits,
		&row.Services,
		&row.Cost,
		&row.Grams,
		&perServiceTypeJSON,
		&declaredPricesJSON,
	)
	if err != nil {
		return nil, err
	}

	if len(perServiceTypeJSON) > 0 {
		if err := json.Unmarshal(perServiceTypeJSON, &row.PerServiceType); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de per_service_type: %w", err)
		}
	}

	if len(declaredPricesJSON) > 0 {
		if err := json.Unmarshal(declaredPricesJSON, &row.DeclaredPrices); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de declared_prices: %w", err)
		}
	}

	return row, nil
}
