package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coursehub/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func RunMigrations(pool *pgxpool.Pool) error {
	return migrate(stdlib.OpenDBFromPool(pool))
}

// migrate applies the embedded migrations and always closes db.
func migrate(db *sql.DB) (err error) {
	defer func() {
		if cerr := db.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close db: %w", cerr))
		}
	}()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
