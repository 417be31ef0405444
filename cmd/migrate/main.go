// migrate aplica en orden los scripts SQL del directorio de migraciones que aún no estén
// registrados en schema_migrations.
//
// Uso: go run ./cmd/migrate [directorio]
// Por defecto usa internal/infrastructure/postgres/migrations.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jhoicas/saftpt-validator/internal/infrastructure/postgres"
	"github.com/jhoicas/saftpt-validator/pkg/config"
	"github.com/jhoicas/saftpt-validator/pkg/logger"
)

func main() {
	dir := filepath.Join("internal", "infrastructure", "postgres", "migrations")
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).WithComponent("migrate")
	if !cfg.DB.Enabled() {
		log.Fatal().Msg("DATABASE_URL o DB_HOST requerido")
	}

	files, err := migrationFiles(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("leer migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.ApplyMigrations(ctx, pool, files)
	if err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Strs("applied", applied).Int("total", len(files)).Msg("migraciones al día")
}

// migrationFiles lee los .sql del directorio ordenados por nombre.
func migrationFiles(dir string) ([]postgres.Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []postgres.Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, postgres.Migration{Name: e.Name(), SQL: string(data)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
