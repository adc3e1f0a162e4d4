package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Channel string // delivery channel filter ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// DeliveryEventData captures one collaborator outcome for a submission.
type DeliveryEventData struct {
	Channel      string
	Status       string
	Reason       string
	Mode         string
	LatencyMs    int64
	ErrorMessage string
}

// DeliveryEventRecord is a stored delivery event.
type DeliveryEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	DeliveryEventData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// AppendDelivery records the outcome of one delivery channel.
	AppendDelivery(ctx context.Context, data DeliveryEventData) error

	// QueryDeliveries returns delivery events, newest first.
	QueryDeliveries(ctx context.Context, opts QueryOpts) ([]DeliveryEventRecord, error)
}

// Submission is one document in a submission collection.
type Submission struct {
	ID         string
	Collection string
	Data       json.RawMessage
	CreatedAt  time.Time
}

// SubmissionRepo is a minimal document collection store.
type SubmissionRepo interface {
	// Add stores doc as JSON in the collection and returns its generated ID.
	Add(ctx context.Context, collection string, doc any) (string, error)

	// List returns documents of a collection, newest first.
	List(ctx context.Context, collection string, limit int) ([]Submission, error)
}
