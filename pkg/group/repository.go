package group

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

func key(groupID string) storage.Item {
	return storage.Item{"group_id": &types.AttributeValueMemberS{Value: groupID}}
}

func (r repository) Find(ctx context.Context, groupID string) (*model.Group, error) {
	item, err := r.table.Get(ctx, key(groupID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var group model.Group
	if err := attributevalue.UnmarshalMap(item, &group); err != nil {
		return nil, fmt.Errorf("error unmarshalling group: %v", err)
	}
	return &group, nil
}

func (r repository) FindAll(ctx context.Context) ([]model.Group, error) {
	items, err := r.table.Scan(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]model.Group, 0, len(items))
	for _, item := range items {
		var group model.Group
		if err := attributevalue.UnmarshalMap(item, &group); err != nil {
			return nil, fmt.Errorf("error unmarshalling group: %v", err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Save writes a group unconditionally. It exists for the seed loader, the HTTP surface
// never mutates groups.
func (r repository) Save(ctx context.Context, group model.Group) error {
	item, err := attributevalue.MarshalMap(group)
	if err != nil {
		return fmt.Errorf("error marshalling group: %v", err)
	}
	return r.table.Put(ctx, item)
}
