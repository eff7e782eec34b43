package member

import (
	"context"

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

func key(eventID string, userID string) storage.Item {
	return storage.Item{
		"event_id": &types.AttributeValueMemberS{Value: eventID},
		"user_id":  &types.AttributeValueMemberS{Value: userID},
	}
}

// Add inserts the membership pair on condition that it is absent. The returned bool
// reports whether a write took place.
func (r repository) Add(ctx context.Context, eventID string, userID string) (bool, error) {
	return r.table.PutIfAbsent(ctx, key(eventID, userID))
}

// Remove deletes the membership pair on condition that it exists. The returned bool
// reports whether a delete took place.
func (r repository) Remove(ctx context.Context, eventID string, userID string) (bool, error) {
	return r.table.Delete(ctx, key(eventID, userID))
}

// FindByEvent returns the membership pairs under one event partition.
func (r repository) FindByEvent(ctx context.Context, eventID string) ([]model.EventMemberRelation, error) {
	items, err := r.table.Query(ctx, &types.AttributeValueMemberS{Value: eventID})
	if err != nil {
		return nil, err
	}
	return unmarshalRelations(items)
}

// FindByUser scans for every membership pair carrying userID. The table is keyed by
// event, so the reverse lookup is a full scan with a filter.
func (r repository) FindByUser(ctx context.Context, userID string) ([]model.EventMemberRelation, error) {
	items, err := r.table.ScanFilter(ctx, "user_id", &types.AttributeValueMemberS{Value: userID})
	if err != nil {
		return nil, err
	}
	return unmarshalRelations(items)
}

func unmarshalRelations(items []storage.Item) ([]model.EventMemberRelation, error) {
	relations := make([]model.EventMemberRelation, 0, len(items))
	for _, item := range items {
		var relation model.EventMemberRelation
		if err := attributevalue.UnmarshalMap(item, &relation); err != nil {
			return nil, err
		}
		relations = append(relations, relation)
	}
	return relations, nil
}
