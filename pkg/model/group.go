package model

// Group is read-mostly reference data; this service never mutates it outside of seeding.
// swagger:model
type Group struct {
	GroupID     string `json:"group_id" dynamodbav:"group_id"`
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
}
