package main

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"talentflow-backend/config"
	"talentflow-backend/internal/repository/sqlstore"
	"talentflow-backend/internal/seed"
	"talentflow-backend/pkg/logger"
)

// bootstrap loads configuration, initialises logging and opens a migrated store.
func bootstrap(ctx context.Context, configPath string) (*config.Config, *sqlstore.Store, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.LogLevel)

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver: cfg.DBDriver,
		Path:   cfg.DBPath,
		URL:    cfg.DBUrl,
		Debug:  strings.EqualFold(cfg.LogLevel, "debug"),
	})
	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}
	return cfg, store, nil
}

func newSeeder(store *sqlstore.Store) *seed.Seeder {
	repos := store.Repositories()
	return seed.NewSeeder(repos.Jobs, repos.Candidates, repos.Timeline, repos.Assessments, repos.Users)
}

// newRand returns a generator for seeding; 0 picks a time-based seed.
func newRand(seedValue int64) *rand.Rand {
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seedValue), uint64(seedValue)>>1|1))
}
