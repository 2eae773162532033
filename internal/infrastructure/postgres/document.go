package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/textile-market/internal/domain"
)

// stamped lo cumplen las entidades que embeben entity.Timestamps.
type stamped interface {
	Touch(now time.Time)
}

// docTable guarda registros como JSONB en una tabla (id, doc, created_at, updated_at).
// Los filtros son objetos JSON evaluados por contención (doc @> filtro).
type docTable[T any] struct {
	q         Querier
	name      string
	immutable []string // claves del doc que Update conserva del valor almacenado
	dup       error    // error a devolver ante 23505
	now       func() time.Time
}

func newDocTable[T any](q Querier, name string, dup error, immutable ...string) docTable[T] {
	return docTable[T]{
		q:         q,
		name:      name,
		immutable: append([]string{"created_at"}, immutable...),
		dup:       dup,
		now:       time.Now,
	}
}

func (t docTable[T]) insert(ctx context.Context, id string, doc stamped) error {
	now := t.now().UTC()
	doc.Touch(now)
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, doc, created_at, updated_at) VALUES ($1, $2::jsonb, $3, $3)`, t.name)
	if _, err := t.q.Exec(ctx, query, id, raw, now); err != nil {
		return writeError(err, t.dup, "insert", t.name)
	}
	return nil
}

// replace reescribe el doc conservando las claves inmutables almacenadas.
func (t docTable[T]) replace(ctx context.Context, id string, doc stamped) error {
	now := t.now().UTC()
	doc.Touch(now)
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}
	keep := make([]string, 0, len(t.immutable))
	for _, key := range t.immutable {
		keep = append(keep, fmt.Sprintf("'%s', doc->'%s'", key, key))
	}
	query := fmt.Sprintf(`UPDATE %s SET doc = $2::jsonb || jsonb_build_object(%s), updated_at = $3 WHERE id = $1`,
		t.name, strings.Join(keep, ", "))
	tag, err := t.q.Exec(ctx, query, id, raw, now)
	if err != nil {
		return writeError(err, t.dup, "update", t.name)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// patch aplica expr (una expresión jsonb sobre doc) a la fila id si además cumple cond,
// y renueva updated_at. args se numeran desde $4. Sin fila afectada devuelve
// domain.ErrNotFound si la fila no existe y domain.ErrConflict si existe pero no cumple cond.
func (t docTable[T]) patch(ctx context.Context, id, expr, cond string, args ...any) error {
	now := t.now().UTC()
	stamp, err := json.Marshal(now)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}
	if cond != "" {
		cond = " AND " + cond
	}
	query := fmt.Sprintf(`UPDATE %s SET doc = jsonb_set(%s, '{updated_at}', $2::jsonb), updated_at = $3 WHERE id = $1%s`,
		t.name, expr, cond)
	tag, err := t.q.Exec(ctx, query, append([]any{id, stamp, now}, args...)...)
	if err != nil {
		return writeError(err, t.dup, "update", t.name)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = t.q.QueryRow(ctx, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, t.name), id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("get %s: %w", t.name, err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (t docTable[T]) delete(ctx context.Context, id string) error {
	tag, err := t.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t docTable[T]) getByID(ctx context.Context, id string) (*T, error) {
	var raw []byte
	err := t.q.QueryRow(ctx, fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, t.name), id).Scan(&raw)
	return t.decodeRow(raw, err)
}

func (t docTable[T]) findOne(ctx context.Context, filter map[string]any) (*T, error) {
	cond, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	var raw []byte
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE doc @> $1::jsonb ORDER BY created_at, id LIMIT 1`, t.name)
	err = t.q.QueryRow(ctx, query, cond).Scan(&raw)
	return t.decodeRow(raw, err)
}

// find lista por filtro en orden de creación. limit <= 0 no limita.
func (t docTable[T]) find(ctx context.Context, filter map[string]any, limit, offset int) ([]*T, error) {
	if filter == nil {
		filter = map[string]any{}
	}
	cond, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE doc @> $1::jsonb ORDER BY created_at, id`, t.name)
	args := []any{cond}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()

	var list []*T
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.name, err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (t docTable[T]) decodeRow(raw []byte, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.name, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.name, err)
	}
	return &v, nil
}
