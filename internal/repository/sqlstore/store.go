// Package sqlstore implements the domain repositories on top of GORM.
// SQLite is the default backend; Postgres is reached through a pgx pool.
package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/database"

	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver string
	Path   string // sqlite file, ":memory:" for an ephemeral store
	URL    string // postgres connection string
	Debug  bool
}

// Store owns the database handle shared by all repositories.
type Store struct {
	db      *gorm.DB
	closers []func()
}

// AllModels lists every table of the store in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&domain.Job{},
		&domain.Candidate{},
		&domain.CandidateTimeline{},
		&domain.Assessment{},
		&domain.AssessmentResponse{},
		&domain.User{},
	}
}

func Open(ctx context.Context, opts Options) (*Store, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if opts.Debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	switch opts.Driver {
	case DriverSQLite, "":
		path := opts.Path
		if path == "" {
			path = ":memory:"
		}
		db, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, fmt.Errorf("sqlstore: open sqlite %s: %w", path, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlstore: sqlite handle: %w", err)
		}
		// one connection: keeps ":memory:" a single database and serializes writes
		sqlDB.SetMaxOpenConns(1)
		return &Store{db: db, closers: []func(){func() { sqlDB.Close() }}}, nil

	case DriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, opts.URL)
		if err != nil {
			return nil, fmt.Errorf("sqlstore: connect postgres: %w", err)
		}
		sqlDB := stdlib.OpenDBFromPool(pool)
		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
		if err != nil {
			sqlDB.Close()
			pool.Close()
			return nil, fmt.Errorf("sqlstore: open postgres: %w", err)
		}
		return &Store{db: db, closers: []func(){func() { sqlDB.Close() }, pool.Close}}, nil
	}

	return nil, fmt.Errorf("sqlstore: unsupported driver %q", opts.Driver)
}

// DB exposes the underlying handle, mainly for tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates every table and index.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("sqlstore: migrate: %w", err)
	}
	return nil
}

func (s *Store) Close() {
	for _, c := range s.closers {
		c()
	}
}

// Repositories bundles one repository per table.
type Repositories struct {
	Jobs        domain.JobRepository
	Candidates  domain.CandidateRepository
	Timeline    domain.TimelineRepository
	Assessments domain.AssessmentRepository
	Responses   domain.AssessmentResponseRepository
	Users       domain.UserRepository
}

func (s *Store) Repositories() Repositories {
	return Repositories{
		Jobs:        NewJobRepository(s.db),
		Candidates:  NewCandidateRepository(s.db),
		Timeline:    NewTimelineRepository(s.db),
		Assessments: NewAssessmentRepository(s.db),
		Responses:   NewAssessmentResponseRepository(s.db),
		Users:       NewUserRepository(s.db),
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// updateByID applies a partial update and reports ErrNotFound when no row matched.
func updateByID(ctx context.Context, db *gorm.DB, model interface{}, id int64, fields map[string]interface{}) error {
	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
