package model

// Event is one record in the Event table. Attribute names match the storage layout, all
// values are flat scalars.
// swagger:model
type Event struct {
	EventID     string `json:"event_id" dynamodbav:"event_id"`
	GroupID     string `json:"group_id" dynamodbav:"group_id"`
	OrganizerID string `json:"organizer_id" dynamodbav:"organizer_id"`
	EventName   string `json:"event_name" dynamodbav:"event_name"`
	Description string `json:"description" dynamodbav:"description"`
	Location    string `json:"location" dynamodbav:"location"`
	Time        string `json:"time" dynamodbav:"time"`
	Duration    int    `json:"duration" dynamodbav:"duration"`
	Capacity    int    `json:"capacity" dynamodbav:"capacity"`
	Status      string `json:"status" dynamodbav:"status"`
	Tag1        string `json:"tag_1,omitempty" dynamodbav:"tag_1,omitempty"`
	Tag2        string `json:"tag_2,omitempty" dynamodbav:"tag_2,omitempty"`
}
