package domain

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// JobStatus reflects the import job state machine: RUNNING until finalized,
// then FINISHED. A crash mid-run leaves the job permanently RUNNING with
// partial counters; nothing recovers that state.
type JobStatus string

const (
	JobRunning  JobStatus = "RUNNING"
	JobFinished JobStatus = "FINISHED"
)

// ImportJob is the append-only provenance record of one pipeline run.
// Created at run start, mutated only by the run that created it, finalized
// exactly once.
type ImportJob struct {
	gorm.Model
	SupplierID      uint       `gorm:"column:supplier_id;index;not null"`
	Filename        string     `gorm:"column:filename;type:varchar(255);not null"`
	StartedAt       time.Time  `gorm:"column:started_at;not null"`
	FinishedAt      *time.Time `gorm:"column:finished_at"`
	ProcessedRows   int        `gorm:"column:processed_rows;not null;default:0"`
	CreatedLinks    int        `gorm:"column:created_links;not null;default:0"`
	UpdatedLinks    int        `gorm:"column:updated_links;not null;default:0"`
	CreatedProducts int        `gorm:"column:created_products;not null;default:0"`
	Notes           string     `gorm:"column:notes;type:text"`
}

func (ImportJob) TableName() string { return "import_jobs" }

// NewImportJob starts a job record for one run.
func NewImportJob(supplierID uint, filename string) *ImportJob {
	return &ImportJob{
		SupplierID: supplierID,
		Filename:   filename,
		StartedAt:  time.Now(),
	}
}

// Status derives the state from the finish timestamp.
func (j *ImportJob) Status() JobStatus {
	if j.FinishedAt == nil {
		return JobRunning
	}
	return JobFinished
}

// Finish finalizes the job once; later calls are no-ops.
func (j *ImportJob) Finish(notes []string) {
	if j.FinishedAt != nil {
		return
	}
	now := time.Now()
	j.FinishedAt = &now
	if len(notes) > 0 {
		j.Notes = strings.Join(notes, "\n")
	}
}
