package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/market-intelligence-api/infrastructure/database/postgres"
	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

const (
	monthSnapshotsTable = "month_snapshots ms"
)

type MonthSnapshotRepository interface {
	List(ctx context.Context) ([]*domain.MonthSnapshot, error)
	GetByLabel(ctx context.Context, label string) (*domain.MonthSnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.MonthSnapshot) error
}

type monthSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMonthSnapshotRepository(conn *postgres.Connection) MonthSnapshotRepository {
	return &monthSnapshotRepository{
		conn: conn,
	}
}

func (r *monthSnapshotRepository) List(ctx context.Context) ([]*domain.MonthSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select("ms.payload").
		From(monthSnapshotsTable).
		OrderBy("ms.sort_index ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MonthSnapshot, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}

		snapshot, err := decodeSnapshot(payload)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// GetByLabel retorna nil, nil quando o mês não possui snapshot
func (r *monthSnapshotRepository) GetByLabel(ctx context.Context, label string) (*domain.MonthSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select("ms.payload").
		From(monthSnapshotsTable).
		Where(squirrel.Eq{"ms.label": label}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return decodeSnapshot(payload)
}

func (r *monthSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.MonthSnapshot) error {
	if snapshot == nil {
		return nil
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("month_snapshots").
		Columns("label", "sort_index", "payload").
		Values(snapshot.Label, snapshot.SortIndex, payload).
		Suffix(`
			ON CONFLICT (label) DO UPDATE SET
				sort_index = EXCLUDED.sort_index,
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func decodeSnapshot(payload []byte) (*domain.MonthSnapshot, error) {
	snapshot := &domain.MonthSnapshot{}
	if err := json.Unmarshal(payload, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do snapshot: %w", err)
	}
	return snapshot, nil
}
