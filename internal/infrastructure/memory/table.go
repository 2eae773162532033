package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/textile-market/internal/domain"
)

// stamped lo cumplen las entidades que embeben entity.Timestamps.
type stamped interface {
	Touch(now time.Time)
}

// table guarda documentos JSON por id en orden de inserción.
// Los filtros comparan el JSON de cada campo con el JSON del valor buscado (campo ausente = null).
type table[T any] struct {
	mu        sync.RWMutex
	name      string
	ids       []string
	docs      map[string]map[string]json.RawMessage
	unique    []string
	immutable []string
	dup       error
	now       func() time.Time
}

func newTable[T any](name string, dup error, unique []string, immutable ...string) *table[T] {
	return &table[T]{
		name:      name,
		docs:      make(map[string]map[string]json.RawMessage),
		unique:    unique,
		immutable: append([]string{"created_at"}, immutable...),
		dup:       dup,
		now:       time.Now,
	}
}

func (t *table[T]) insert(_ context.Context, id string, doc stamped) error {
	doc.Touch(t.now())
	fields, err := encode(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.docs[id]; ok {
		return t.dup
	}
	if t.conflicts(id, fields) {
		return t.dup
	}
	t.docs[id] = fields
	t.ids = append(t.ids, id)
	return nil
}

func (t *table[T]) replace(_ context.Context, id string, doc stamped) error {
	doc.Touch(t.now())
	fields, err := encode(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	stored, ok := t.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, key := range t.immutable {
		if v, ok := stored[key]; ok {
			fields[key] = v
		}
	}
	if t.conflicts(id, fields) {
		return t.dup
	}
	t.docs[id] = fields
	return nil
}

// mutate aplica fn sobre el documento almacenado y lo guarda, todo bajo t.mu.
// Si fn devuelve error no se escribe nada.
func (t *table[T]) mutate(_ context.Context, id string, fn func(doc *T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	stored, ok := t.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	doc, err := decode[T](stored)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	if s, ok := any(doc).(stamped); ok {
		s.Touch(t.now())
	}
	fields, err := encode(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}
	if t.conflicts(id, fields) {
		return t.dup
	}
	t.docs[id] = fields
	return nil
}

func (t *table[T]) delete(_ context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.docs, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[T]) getByID(_ context.Context, id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fields, ok := t.docs[id]
	if !ok {
		return nil, nil
	}
	return decode[T](fields)
}

func (t *table[T]) findOne(ctx context.Context, filter map[string]any) (*T, error) {
	list, err := t.find(ctx, filter, 1, 0)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// find lista en orden de inserción. limit <= 0 no limita.
func (t *table[T]) find(_ context.Context, filter map[string]any, limit, offset int) ([]*T, error) {
	want, err := encodeFilter(filter)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	var list []*T
	skipped := 0
	for _, id := range t.ids {
		fields := t.docs[id]
		if !matches(fields, want) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		v, err := decode[T](fields)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		if limit > 0 && len(list) == limit {
			break
		}
	}
	return list, nil
}

// conflicts informa si otro documento ya tiene el mismo valor en un campo único. Requiere t.mu.
func (t *table[T]) conflicts(id string, fields map[string]json.RawMessage) bool {
	for _, key := range t.unique {
		v, ok := fields[key]
		if !ok || isNull(v) {
			continue
		}
		for otherID, other := range t.docs {
			if otherID != id && bytes.Equal(other[key], v) {
				return true
			}
		}
	}
	return false
}

type tableSnapshot struct {
	ids  []string
	docs map[string]map[string]json.RawMessage
}

func (t *table[T]) snapshot() tableSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	docs := make(map[string]map[string]json.RawMessage, len(t.docs))
	for id, fields := range t.docs {
		docs[id] = fields
	}
	return tableSnapshot{ids: append([]string(nil), t.ids...), docs: docs}
}

func (t *table[T]) restore(s tableSnapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ids = s.ids
	t.docs = s.docs
}

func encode(v any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func decode[T any](fields map[string]json.RawMessage) (*T, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func encodeFilter(filter map[string]any) (map[string]json.RawMessage, error) {
	want := make(map[string]json.RawMessage, len(filter))
	for key, v := range filter {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode filter %s: %w", key, err)
		}
		want[key] = raw
	}
	return want, nil
}

func matches(fields, want map[string]json.RawMessage) bool {
	for key, v := range want {
		got, ok := fields[key]
		if !ok {
			got = json.RawMessage("null")
		}
		if !bytes.Equal(got, v) {
			return false
		}
	}
	return true
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(v, []byte("null"))
}
