package audit

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

func (r repository) Append(ctx context.Context, entry model.AuditLogEntry) error {
	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("error marshalling audit log entry: %v", err)
	}
	return r.table.Put(ctx, item)
}

func (r repository) List(ctx context.Context, limit int, skip int) ([]model.AuditLogEntry, error) {
	items, err := r.table.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return page(items, limit, skip)
}

func (r repository) ListByEvent(ctx context.Context, eventID string, limit int, skip int) ([]model.AuditLogEntry, error) {
	items, err := r.table.ScanFilter(ctx, "event_id", &types.AttributeValueMemberS{Value: eventID})
	if err != nil {
		return nil, err
	}
	return page(items, limit, skip)
}

func page(items []storage.Item, limit int, skip int) ([]model.AuditLogEntry, error) {
	if skip > len(items) {
		skip = len(items)
	}
	end := len(items)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}

	entries := make([]model.AuditLogEntry, 0, end-skip)
	for _, item := range items[skip:end] {
		var entry model.AuditLogEntry
		if err := attributevalue.UnmarshalMap(item, &entry); err != nil {
			return nil, fmt.Errorf("error unmarshalling audit log entry: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
