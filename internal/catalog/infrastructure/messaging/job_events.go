// Package messaging publishes import-job lifecycle events to Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"github.com/norteparts/catalogsync/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// ImportJobFinished is the event body emitted when a run finalizes.
type ImportJobFinished struct {
	JobID           uint      `json:"job_id"`
	SupplierSlug    string    `json:"supplier_slug"`
	Filename        string    `json:"filename"`
	ProcessedRows   int       `json:"processed_rows"`
	CreatedLinks    int       `json:"created_links"`
	UpdatedLinks    int       `json:"updated_links"`
	CreatedProducts int       `json:"created_products"`
	FinishedAt      time.Time `json:"finished_at"`
}

// JobEventPublisher writes job events to one topic. Publish failures are the
// caller's to log; a failed publish never fails an import run.
type JobEventPublisher struct {
	writer *kafka.Writer
	topic  string
}

// NewJobEventPublisher creates a publisher over the given brokers.
func NewJobEventPublisher(brokers []string, topic string) *JobEventPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
	}
	logger.Info(context.Background(), "kafka job-event publisher created", "brokers", brokers, "topic", topic)
	return &JobEventPublisher{writer: writer, topic: topic}
}

// JobFinished publishes the finalization event, keyed by supplier slug so
// events for one supplier stay ordered.
func (p *JobEventPublisher) JobFinished(ctx context.Context, job *domain.ImportJob, supplierSlug string) error {
	finishedAt := time.Now()
	if job.FinishedAt != nil {
		finishedAt = *job.FinishedAt
	}
	event := ImportJobFinished{
		JobID:           job.ID,
		SupplierSlug:    supplierSlug,
		Filename:        job.Filename,
		ProcessedRows:   job.ProcessedRows,
		CreatedLinks:    job.CreatedLinks,
		UpdatedLinks:    job.UpdatedLinks,
		CreatedProducts: job.CreatedProducts,
		FinishedAt:      finishedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(supplierSlug),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *JobEventPublisher) Close() error {
	return p.writer.Close()
}
