package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/repository"
)

// LoggingService stores and queries request and audit logs.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService over the logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a logging service.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog stores a single entry, assigning id and timestamp when missing.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, toDocument(entry))
}

// CreateLogs stores entries in bulk.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = toDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// QueryLogs returns entries matching opts, newest first.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	docs, err := s.repo.Query(ctx, toRepoQuery(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = fromDocument(doc)
	}
	return entries, nil
}

// CountLogs counts entries matching opts.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, toRepoQuery(opts))
}

func toRepoQuery(opts model.LogQueryOptions) repository.LogQueryOptions {
	return repository.LogQueryOptions{
		RequestID:  opts.RequestID,
		Level:      opts.Level,
		Method:     opts.Method,
		Path:       opts.Path,
		ActionType: opts.ActionType,
		StartTime:  opts.StartTime,
		EndTime:    opts.EndTime,
		Limit:      opts.Limit,
		Skip:       opts.Skip,
	}
}

func toDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	return &repository.LogEntryDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		RequestID:  entry.RequestID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		Duration:   entry.Duration,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		Error:      entry.Error,
		Subject:    entry.Subject,
		Role:       entry.Role,
		ActionType: entry.ActionType,
		Fields:     entry.Fields,
	}
}

func fromDocument(doc *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		Duration:   doc.Duration,
		IP:         doc.IP,
		UserAgent:  doc.UserAgent,
		Error:      doc.Error,
		Subject:    doc.Subject,
		Role:       doc.Role,
		ActionType: doc.ActionType,
		Fields:     doc.Fields,
	}
}
