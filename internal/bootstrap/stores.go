package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nucareers/career-portal/internal/config"
	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/nucareers/career-portal/internal/infrastructure/mongostore"
	"github.com/nucareers/career-portal/internal/infrastructure/repository"
)

// Stores holds the graduate store selected by configuration and the
// PostgreSQL-backed import ledger.
type Stores struct {
	DB        *gorm.DB
	Graduates domain.Store
	Runs      domain.ImportRunRepository

	mongo   *mongostore.GraduateStore
	closers []func(context.Context) error
}

func OpenStores(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Stores, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	s := &Stores{DB: db, Runs: repository.NewImportRunRepository(db)}
	s.closers = append(s.closers, func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	switch cfg.Store.Kind {
	case config.StoreMongo:
		client, err := mongostore.Connect(ctx, cfg.Store.MongoURI)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.mongo = mongostore.NewGraduateStore(client.Database(cfg.Store.MongoDatabase), log)
		s.Graduates = s.mongo
		s.closers = append(s.closers, client.Disconnect)
	default:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("create pgx pool: %w", err)
		}
		s.Graduates = repository.NewGraduateStore(pool, db)
		s.closers = append(s.closers, func(context.Context) error {
			pool.Close()
			return nil
		})
	}

	return s, nil
}

// Migrate creates the relational schema and, for the document store, its unique indexes.
func (s *Stores) Migrate(ctx context.Context) error {
	if err := repository.Migrate(s.DB); err != nil {
		return err
	}
	if s.mongo != nil {
		return s.mongo.EnsureIndexes(ctx)
	}
	return nil
}

// Close releases connections in reverse order of acquisition and returns the first error.
func (s *Stores) Close(ctx context.Context) error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}
