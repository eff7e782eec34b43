package comment

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gatherhub/event-manager/pkg/storage"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(table storage.Table) *repository {
	return &repository{table}
}

type repository struct {
	table storage.Table
}

func key(commentID string) storage.Item {
	return storage.Item{"comment_id": &types.AttributeValueMemberS{Value: commentID}}
}

func (r repository) Save(ctx context.Context, comment model.Comment) error {
	item, err := attributevalue.MarshalMap(comment)
	if err != nil {
		return fmt.Errorf("error marshalling comment: %v", err)
	}

	created, err := r.table.PutIfAbsent(ctx, item)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("comment id collision: %q", comment.CommentID)
	}
	return nil
}

// UpdateText rewrites the text attribute on condition that the comment exists and the
// text differs.
func (r repository) UpdateText(ctx context.Context, commentID string, text string) (storage.UpdateResult, error) {
	return r.table.UpdateAttribute(ctx, key(commentID), "text", &types.AttributeValueMemberS{Value: text})
}

func (r repository) Delete(ctx context.Context, commentID string) (bool, error) {
	return r.table.Delete(ctx, key(commentID))
}

// FindByEvent scans for every comment under eventID. Comments are keyed by comment_id
// alone, so the event lookup is a full scan with a filter.
func (r repository) FindByEvent(ctx context.Context, eventID string) ([]model.Comment, error) {
	items, err := r.table.ScanFilter(ctx, "event_id", &types.AttributeValueMemberS{Value: eventID})
	if err != nil {
		return nil, err
	}

	comments := make([]model.Comment, 0, len(items))
	for _, item := range items {
		var comment model.Comment
		if err := attributevalue.UnmarshalMap(item, &comment); err != nil {
			return nil, fmt.Errorf("error unmarshalling comment: %v", err)
		}
		comments = append(comments, comment)
	}
	return comments, nil
}
