package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names used by the repositories.
const (
	tableStates      = "quiz_states"
	tableSubmissions = "submissions"
	tableDeliveries  = "delivery_events"
	tableLLMRequests = "llm_request_events"
)

var (
	// QuizStatesColumns holds the columns for the "quiz_states" table.
	QuizStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuizStatesTable holds the schema information for the "quiz_states" table.
	QuizStatesTable = &schema.Table{
		Name:       tableStates,
		Columns:    QuizStatesColumns,
		PrimaryKey: []*schema.Column{QuizStatesColumns[0]},
	}

	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uuid", Type: field.TypeString, Unique: true},
		{Name: "collection", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       tableSubmissions,
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "submission_collection_created_at", Columns: []*schema.Column{SubmissionsColumns[2], SubmissionsColumns[4]}},
		},
	}

	// DeliveryEventsColumns holds the columns for the "delivery_events" table.
	DeliveryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "channel", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "mode", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// DeliveryEventsTable holds the schema information for the "delivery_events" table.
	DeliveryEventsTable = &schema.Table{
		Name:       tableDeliveries,
		Columns:    DeliveryEventsColumns,
		PrimaryKey: []*schema.Column{DeliveryEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "deliveryevent_timestamp", Columns: []*schema.Column{DeliveryEventsColumns[2]}},
			{Name: "deliveryevent_channel", Columns: []*schema.Column{DeliveryEventsColumns[3]}},
			{Name: "deliveryevent_status", Columns: []*schema.Column{DeliveryEventsColumns[4]}},
		},
	}

	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       tableLLMRequests,
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{LlmRequestEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{LlmRequestEventsColumns[5]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuizStatesTable,
		SubmissionsTable,
		DeliveryEventsTable,
		LlmRequestEventsTable,
	}
)

// migrate creates missing tables and indexes. Existing data is left alone.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
