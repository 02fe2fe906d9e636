package knowledge

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Skufu/medadvisor/internal/domain"
)

// Querier is the subset of *pgxpool.Pool the loader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// The tables are expected to carry a position column that fixes entry order.
// List columns are text[].
const (
	symptomsQuery = `SELECT name, severity_levels, associated_conditions, urgency_indicators
		FROM symptoms ORDER BY position`
	conditionsQuery = `SELECT name, description, symptoms, urgency, recommendations
		FROM conditions ORDER BY position`
	medicationsQuery = `SELECT name, generic_name, uses, dosage, side_effects, precautions
		FROM medications ORDER BY position`
)

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

// LoadPostgres reads all three tables once and builds a Store from them.
func LoadPostgres(ctx context.Context, q Querier) (*Store, error) {
	var t Tables
	var err error

	t.Symptoms, err = queryAll(ctx, q, symptomsQuery, func(row pgx.CollectableRow) (SymptomEntry, error) {
		var e SymptomEntry
		err := row.Scan(&e.Name, &e.SeverityLevels, &e.AssociatedConditions, &e.UrgencyIndicators)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("load symptoms: %w", err)
	}

	t.Conditions, err = queryAll(ctx, q, conditionsQuery, func(row pgx.CollectableRow) (ConditionEntry, error) {
		var e ConditionEntry
		var urgency string
		if err := row.Scan(&e.Name, &e.Description, &e.Symptoms, &urgency, &e.Recommendations); err != nil {
			return e, err
		}
		u, err := domain.ParseUrgency(urgency)
		if err != nil {
			return e, fmt.Errorf("%w: condition %q: %v", ErrInvalidKnowledge, e.Name, err)
		}
		e.Urgency = u
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load conditions: %w", err)
	}

	t.Medications, err = queryAll(ctx, q, medicationsQuery, func(row pgx.CollectableRow) (MedicationEntry, error) {
		var e MedicationEntry
		err := row.Scan(&e.Name, &e.GenericName, &e.Uses, &e.Dosage, &e.SideEffects, &e.Precautions)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("load medications: %w", err)
	}

	return New(t)
}

func queryAll[T any](ctx context.Context, q Querier, sql string, fn pgx.RowToFunc[T]) ([]T, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, fn)
}
