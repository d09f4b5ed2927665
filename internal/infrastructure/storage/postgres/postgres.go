package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/infrastructure/migration"
)

type Storage struct {
	pool *pgxpool.Pool
}

func New(cfg *config.Config) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("parse database uri: %w", err)
	}

	// Границы пула как у исходной системы: max 10, acquire 30s, idle 10s
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 0
	poolCfg.ConnConfig.ConnectTimeout = 30 * time.Second
	poolCfg.MaxConnIdleTime = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
