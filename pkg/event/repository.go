package event

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

func key(eventID string) storage.Item {
	return storage.Item{"event_id": &types.AttributeValueMemberS{Value: eventID}}
}

func (r repository) Create(ctx context.Context, event model.Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("error marshalling event: %v", err)
	}

	created, err := r.table.PutIfAbsent(ctx, item)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("event id collision: %q", event.EventID)
	}
	return nil
}

func (r repository) Find(ctx context.Context, eventID string) (*model.Event, error) {
	item, err := r.table.Get(ctx, key(eventID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var event model.Event
	if err := attributevalue.UnmarshalMap(item, &event); err != nil {
		return nil, fmt.Errorf("error unmarshalling event: %v", err)
	}
	return &event, nil
}

func (r repository) Exists(ctx context.Context, eventID string) (bool, error) {
	item, err := r.table.Get(ctx, key(eventID))
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

func (r repository) UpdateField(ctx context.Context, eventID string, field Field, value types.AttributeValue) (storage.UpdateResult, error) {
	return r.table.UpdateAttribute(ctx, key(eventID), string(field), value)
}

func (r repository) Replace(ctx context.Context, event model.Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("error marshalling event: %v", err)
	}
	return r.table.Put(ctx, item)
}

func (r repository) Delete(ctx context.Context, eventID string) (bool, error) {
	return r.table.Delete(ctx, key(eventID))
}

func (r repository) FindAll(ctx context.Context) ([]model.Event, error) {
	items, err := r.table.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return unmarshalEvents(items)
}

func (r repository) FindByGroup(ctx context.Context, groupID string) ([]model.Event, error) {
	items, err := r.table.ScanFilter(ctx, "group_id", &types.AttributeValueMemberS{Value: groupID})
	if err != nil {
		return nil, err
	}
	return unmarshalEvents(items)
}

func unmarshalEvents(items []storage.Item) ([]model.Event, error) {
	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		var event model.Event
		if err := attributevalue.UnmarshalMap(item, &event); err != nil {
			return nil, fmt.Errorf("error unmarshalling event: %v", err)
		}
		events = append(events, event)
	}
	return events, nil
}
