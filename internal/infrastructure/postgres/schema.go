package postgres

import (
	"context"
	"fmt"
)

var documentTables = []string{"users", "companies", "categories", "products", "inquiries", "orders", "reviews"}

// columnas derivadas e índices sobre claves del documento; los UNIQUE respaldan email y
// los números INQ/ORD. price_per_unit se lee como decimal.Decimal vía pgxdecimal.
var documentIndexes = []string{
	`ALTER TABLE products ADD COLUMN IF NOT EXISTS price_per_unit NUMERIC
		GENERATED ALWAYS AS ((doc->>'price_per_unit')::numeric) STORED`,
	`CREATE INDEX IF NOT EXISTS products_category_price_idx ON products ((doc->>'category_id'), price_per_unit)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users ((doc->>'email'))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS inquiries_number_key ON inquiries ((doc->>'inquiry_number'))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS orders_number_key ON orders ((doc->>'order_number'))`,
	`CREATE INDEX IF NOT EXISTS categories_slug_idx ON categories ((doc->>'slug'))`,
}

// EnsureSchema crea las tablas e índices si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	stmts := make([]string, 0, len(documentTables)*2+len(documentIndexes)+1)
	for _, table := range documentTables {
		stmts = append(stmts,
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				id         TEXT PRIMARY KEY,
				doc        JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, table),
			fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_doc_idx ON %s USING GIN (doc jsonb_path_ops)`, table, table),
		)
	}
	stmts = append(stmts, `CREATE TABLE IF NOT EXISTS sequences (
		name  TEXT PRIMARY KEY,
		value BIGINT NOT NULL
	)`)
	stmts = append(stmts, documentIndexes...)

	for _, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
