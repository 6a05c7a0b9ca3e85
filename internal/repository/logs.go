package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogEntryDocument is the stored form of a request or audit log line.
type LogEntryDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp  time.Time              `bson:"timestamp"`
	Level      string                 `bson:"level"`
	Message    string                 `bson:"message"`
	RequestID  string                 `bson:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty"`
	Path       string                 `bson:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty"`
	Subject    string                 `bson:"subject,omitempty"`
	Role       string                 `bson:"role,omitempty"`
	ActionType string                 `bson:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty"`
}

// LogQueryOptions filters log queries. Zero values are ignored.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	Method     string
	Path       string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}

// LogsRepository persists log documents.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

// Create inserts a new log entry document.
func (r *LogsRepository) Create(ctx context.Context, entry *LogEntryDocument) error {
	stamp(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts entries in one unordered bulk write.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		stamp(entry)
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Query returns matching documents, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, buildLogFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*LogEntryDocument
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of documents matching opts.
func (r *LogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, buildLogFilter(opts))
}

func stamp(entry *LogEntryDocument) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}

func buildLogFilter(opts LogQueryOptions) bson.M {
	filter := bson.M{}

	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Method != "" {
		filter["method"] = opts.Method
	}
	if opts.Path != "" {
		filter["path"] = opts.Path
	}
	if opts.ActionType != "" {
		filter["action_type"] = opts.ActionType
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}
