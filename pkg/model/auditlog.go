package model

// AuditLogEntry is one record in the append-only EventsLog table. Entries are never
// mutated or deleted.
// swagger:model
type AuditLogEntry struct {
	LogID     string `json:"log_id" dynamodbav:"log_id"`
	EventID   string `json:"event_id,omitempty" dynamodbav:"event_id,omitempty"`
	Action    string `json:"action" dynamodbav:"action"`
	Details   string `json:"details" dynamodbav:"details"`
	Timestamp string `json:"timestamp" dynamodbav:"timestamp"`
	UserID    string `json:"user_id,omitempty" dynamodbav:"user_id,omitempty"`
}
