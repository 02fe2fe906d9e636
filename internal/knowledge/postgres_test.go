package knowledge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows replays fixed rows through the pgx.Rows interface.
type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *[]string:
			*p = row[i].([]string)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

type fakeQuerier struct {
	tables map[string][][]any
	fail   string
}

func (q fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	for table, rows := range q.tables {
		if strings.Contains(sql, "FROM "+table) {
			if table == q.fail {
				return nil, errors.New("relation does not exist")
			}
			return &fakeRows{data: rows}, nil
		}
	}
	return &fakeRows{}, nil
}

func sampleTables() map[string][][]any {
	return map[string][][]any{
		"symptoms": {
			{"cough", []string{"mild"}, []string{"bronchitis"}, []string{"with blood"}},
		},
		"conditions": {
			{"bronchitis", "Inflamed airways", []string{"cough"}, "urgent", []string{"rest"}},
		},
		"medications": {
			{"guaifenesin", "Guaifenesin", []string{"cough"}, "200-400mg every 4 hours", []string{"nausea"}, []string{"drink water"}},
		},
	}
}

func TestLoadPostgres(t *testing.T) {
	store, err := LoadPostgres(context.Background(), fakeQuerier{tables: sampleTables()})
	require.NoError(t, err)

	s, ok := store.Symptom("cough")
	require.True(t, ok)
	assert.Equal(t, []string{"with blood"}, s.UrgencyIndicators)

	c, ok := store.Condition("bronchitis")
	require.True(t, ok)
	assert.Equal(t, "urgent", c.Urgency.String())

	m, ok := store.Medication("GUAIFENESIN syrup")
	require.True(t, ok)
	assert.Equal(t, "200-400mg every 4 hours", m.Dosage)
}

func TestLoadPostgresErrors(t *testing.T) {
	_, err := LoadPostgres(context.Background(), fakeQuerier{tables: sampleTables(), fail: "conditions"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load conditions")

	tables := sampleTables()
	tables["conditions"][0][3] = "whenever"
	_, err = LoadPostgres(context.Background(), fakeQuerier{tables: tables})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidKnowledge))
}
