package postgres

import (
	"context"
	"fmt"
)

// Migration script SQL identificado por su nombre de fichero.
type Migration struct {
	Name string
	SQL  string
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	name       TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ApplyMigrations ejecuta cada migración pendiente en su propia transacción, en el orden
// recibido, y devuelve los nombres aplicados.
func ApplyMigrations(ctx context.Context, db interface {
	Beginner
	Querier
}, migrations []Migration) ([]string, error) {
	if _, err := db.Exec(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("crear schema_migrations: %w", err)
	}

	tx := NewTxRunner(db)
	var applied []string
	for _, m := range migrations {
		var done bool
		if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, m.Name).Scan(&done); err != nil {
			return applied, fmt.Errorf("consultar %s: %w", m.Name, err)
		}
		if done {
			continue
		}
		err := tx.Run(ctx, func(q Querier) error {
			if _, err := q.Exec(ctx, m.SQL); err != nil {
				return err
			}
			_, err := q.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, m.Name)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("migración %s: %w", m.Name, err)
		}
		applied = append(applied, m.Name)
	}
	return applied, nil
}
