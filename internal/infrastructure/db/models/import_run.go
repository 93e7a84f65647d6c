package models

import "time"

type ImportRun struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	FileName       string    `gorm:"type:text;not null"`
	CallerID       string    `gorm:"type:text;not null;default:''"`
	TotalRows      int64     `gorm:"not null;default:0"`
	InsertedCount  int64     `gorm:"not null;default:0"`
	FailedCount    int64     `gorm:"not null;default:0"`
	RejectedCount  int64     `gorm:"not null;default:0"`
	DuplicateCount int64     `gorm:"not null;default:0"`
	StartedAt      time.Time `gorm:"not null;index"`
	FinishedAt     time.Time `gorm:"not null"`
	CreatedAt      time.Time
}

func (ImportRun) TableName() string {
	return "import_runs"
}
