package schema

import (
	"time"
)

// LoadRun records one invocation of the loader. Rows are append-only.
type LoadRun struct {
	// ID is a random UUID.
	ID         string `gorm:"primaryKey;size:36"`
	StartedAt  time.Time
	FinishedAt *time.Time

	FilesTotal     int
	FilesSucceeded int
	FilesFailed    int
	FilesSkipped   int
	RowsInserted   int
}

func (LoadRun) TableName() string { return "load_runs" }

// SourceDocument records a document that was written to the database.
type SourceDocument struct {
	ID        uint   `gorm:"primaryKey"`
	LoadRunID string `gorm:"size:36;index;not null"`
	CompanyID uint   `gorm:"index:idx_source_company_category;not null"`
	Category  string `gorm:"size:20;index:idx_source_company_category;not null"`
	InputName string `gorm:"size:1000"`

	// Fingerprint is a name-based UUID of the document content.
	Fingerprint string `gorm:"size:36;index"`
	ByteSize    int64
	Rows        int
	LoadedAt    time.Time
}

func (SourceDocument) TableName() string { return "source_documents" }
