package model

// EventMemberRelation is a membership fact. Its composite key (event_id, user_id) is its
// entire identity, there is no payload and no history.
// swagger:model
type EventMemberRelation struct {
	EventID string `json:"event_id" dynamodbav:"event_id"`
	UserID  string `json:"user_id" dynamodbav:"user_id"`
}
