package model

// Comment is keyed by comment_id alone; the at-most-one-comment-per-(event, user)
// invariant is enforced by the comment service at write time, not by the table key.
// swagger:model
type Comment struct {
	CommentID string `json:"comment_id" dynamodbav:"comment_id"`
	EventID   string `json:"event_id" dynamodbav:"event_id"`
	UserID    string `json:"user_id" dynamodbav:"user_id"`
	Text      string `json:"text" dynamodbav:"text"`
}
