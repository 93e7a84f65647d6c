package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nucareers/career-portal/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

// GraduateStore is the PostgreSQL graduate backend: pgx for chunk inserts, gorm for the rest.
type GraduateStore struct {
	*GraduateBulkInsertRepository
	*GraduateQueryRepository
}

func NewGraduateStore(pool *pgxpool.Pool, db *gorm.DB) *GraduateStore {
	return &GraduateStore{
		GraduateBulkInsertRepository: NewGraduateBulkInsertRepository(pool),
		GraduateQueryRepository:      NewGraduateQueryRepository(db),
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Graduate{}, &models.ImportRun{})
}
