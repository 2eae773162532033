package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
)

// fakeQuerier registra la última sentencia y devuelve respuestas fijas.
type fakeQuerier struct {
	sql     string
	stmts   []string
	args    []any
	tag     pgconn.CommandTag
	execErr error
	row     fakeRow
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	f.stmts = append(f.stmts, sql)
	return f.tag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, errors.New("query no disponible")
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	f.stmts = append(f.stmts, sql)
	return f.row
}

// fakeRow con value para una columna o values para varias.
type fakeRow struct {
	value  any
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	values := r.values
	if values == nil {
		values = []any{r.value}
	}
	for i, dst := range dest {
		switch d := dst.(type) {
		case *[]byte:
			*d = values[i].([]byte)
		case *int64:
			*d = values[i].(int64)
		case *bool:
			*d = values[i].(bool)
		case *decimal.NullDecimal:
			*d = values[i].(decimal.NullDecimal)
		}
	}
	return nil
}

func TestDocTable_InsertDuplicado(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505"}}
	repo := NewUserRepository(q)

	err := repo.Create(context.Background(), &entity.User{ID: "u1", Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Contains(t, q.sql, "INSERT INTO users")
}

func TestDocTable_ReplaceConservaInmutables(t *testing.T) {
	q := &fakeQuerier{tag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewInquiryRepository(q)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	repo.t.now = func() time.Time { return now }

	inq := &entity.Inquiry{ID: "i1", InquiryNumber: "INQ-000001", Status: entity.InquiryStatusClosed}
	require.NoError(t, repo.Update(context.Background(), inq))
	assert.Contains(t, q.sql, "jsonb_build_object('created_at', doc->'created_at', 'inquiry_number', doc->'inquiry_number')")
	require.Len(t, q.args, 3)
	assert.Equal(t, "i1", q.args[0])
	assert.Equal(t, now, q.args[2])

	var doc map[string]any
	require.NoError(t, json.Unmarshal(q.args[1].([]byte), &doc))
	assert.Equal(t, "Closed", doc["status"])
}

func TestDocTable_ReplaceInexistente(t *testing.T) {
	q := &fakeQuerier{tag: pgconn.NewCommandTag("UPDATE 0")}
	err := NewOrderRepository(q).Update(context.Background(), &entity.Order{ID: "o1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocTable_GetByID(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	repo := NewCategoryRepository(q)

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	q.row = fakeRow{value: []byte(`{"id":"c1","name":"Fabric","slug":"fabric","parent_id":null}`)}
	got, err = repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "fabric", got.Slug)
	assert.Nil(t, got.ParentID)
}

func TestDocTable_FindOneFiltraPorContencion(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	_, err := NewOrderRepository(q).GetByNumber(context.Background(), "ORD-000007")
	require.NoError(t, err)
	assert.Contains(t, q.sql, "doc @> $1::jsonb")
	assert.JSONEq(t, `{"order_number":"ORD-000007"}`, string(q.args[0].([]byte)))
}

func TestDocTable_FindPagina(t *testing.T) {
	q := &fakeQuerier{}
	_, err := NewProductRepository(q).ListByCompany(context.Background(), "co", 10, 20)
	require.Error(t, err)
	assert.Contains(t, q.sql, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{[]byte(`{"company_id":"co"}`), 10, 20}, q.args)
}

func TestInquiryRepo_MarkClosed(t *testing.T) {
	q := &fakeQuerier{tag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewInquiryRepository(q)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	repo.t.now = func() time.Time { return now }

	require.NoError(t, repo.MarkClosed(context.Background(), "i1"))
	assert.Contains(t, q.sql, "UPDATE inquiries SET doc = jsonb_set(jsonb_set(doc, '{status}', to_jsonb($4::text)), '{updated_at}', $2::jsonb)")
	assert.Contains(t, q.sql, "WHERE id = $1 AND doc->>'status' IS DISTINCT FROM $4")
	require.Len(t, q.args, 4)
	assert.Equal(t, "i1", q.args[0])
	assert.JSONEq(t, `"2024-05-01T00:00:00Z"`, string(q.args[1].([]byte)))
	assert.Equal(t, now, q.args[2])
	assert.Equal(t, "Closed", q.args[3])
}

func TestInquiryRepo_MarkClosedSinFilaAfectada(t *testing.T) {
	q := &fakeQuerier{tag: pgconn.NewCommandTag("UPDATE 0"), row: fakeRow{value: true}}
	err := NewInquiryRepository(q).MarkClosed(context.Background(), "i1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.Len(t, q.stmts, 2)
	assert.Contains(t, q.stmts[1], "SELECT EXISTS (SELECT 1 FROM inquiries WHERE id = $1)")

	q = &fakeQuerier{tag: pgconn.NewCommandTag("UPDATE 0"), row: fakeRow{value: false}}
	err = NewInquiryRepository(q).MarkClosed(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_AppendReview(t *testing.T) {
	q := &fakeQuerier{tag: pgconn.NewCommandTag("UPDATE 1")}
	require.NoError(t, NewProductRepository(q).AppendReview(context.Background(), "p1", "r1"))
	assert.Contains(t, q.sql, "|| to_jsonb($4::text)")
	assert.NotContains(t, q.sql, "AND")
	assert.Equal(t, "p1", q.args[0])
	assert.Equal(t, "r1", q.args[3])

	q = &fakeQuerier{tag: pgconn.NewCommandTag("UPDATE 0"), row: fakeRow{value: false}}
	err := NewProductRepository(q).AppendReview(context.Background(), "missing", "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_UpdateConservaReviews(t *testing.T) {
	q := &fakeQuerier{tag: pgconn.NewCommandTag("UPDATE 1")}
	require.NoError(t, NewProductRepository(q).Update(context.Background(), &entity.Product{ID: "p1"}))
	assert.Contains(t, q.sql, "'review', doc->'review'")
}

func TestProductRepo_PriceSummary(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{values: []any{
		int64(3),
		decimal.NullDecimal{Decimal: decimal.RequireFromString("99.5"), Valid: true},
		decimal.NullDecimal{Decimal: decimal.RequireFromString("150.25"), Valid: true},
	}}}
	got, err := NewProductRepository(q).PriceSummary(context.Background(), "cat")
	require.NoError(t, err)
	assert.Contains(t, q.sql, "min(price_per_unit), max(price_per_unit) FROM products WHERE doc @> $1::jsonb")
	assert.JSONEq(t, `{"category_id":"cat"}`, string(q.args[0].([]byte)))
	assert.Equal(t, int64(3), got.Count)
	assert.Equal(t, "99.5", got.Min.String())
	assert.Equal(t, "150.25", got.Max.String())

	q.row = fakeRow{values: []any{int64(0), decimal.NullDecimal{}, decimal.NullDecimal{}}}
	got, err = NewProductRepository(q).PriceSummary(context.Background(), "empty")
	require.NoError(t, err)
	assert.Zero(t, got.Count)
	assert.True(t, got.Min.IsZero())
}

func TestSequenceRepo_Next(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{value: int64(42)}}
	n, err := NewSequenceRepository(q).Next(context.Background(), entity.OrderSequence)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Contains(t, q.sql, "ON CONFLICT (name) DO UPDATE")
}

func TestEnsureSchema(t *testing.T) {
	q := &fakeQuerier{}
	require.NoError(t, EnsureSchema(context.Background(), q))
	assert.Contains(t, q.sql, "categories_slug_idx")
	assert.Contains(t, strings.Join(q.stmts, "\n"), "price_per_unit NUMERIC")

	q.execErr = errors.New("permiso denegado")
	assert.ErrorContains(t, EnsureSchema(context.Background(), q), "ensure schema")
}
