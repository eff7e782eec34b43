package storage

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NewInMemoryTable returns a Table held entirely in memory. It implements the same
// conditional-write semantics as the DynamoDB implementation and is safe for concurrent
// use. Tests and local runs inject it in place of a real table.
func NewInMemoryTable(partitionKey string, sortKey string) *InMemoryTable {
	return &InMemoryTable{
		partitionKey: partitionKey,
		sortKey:      sortKey,
		items:        make(map[string]Item),
	}
}

type InMemoryTable struct {
	partitionKey string
	sortKey      string

	lock  sync.Mutex
	items map[string]Item
}

func (t *InMemoryTable) keyOf(item Item) string {
	key := AttributeString(item[t.partitionKey])
	if t.sortKey != "" {
		key += "\x00" + AttributeString(item[t.sortKey])
	}
	return key
}

func (t *InMemoryTable) Get(_ context.Context, key Item) (Item, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	item, ok := t.items[t.keyOf(key)]
	if !ok {
		return nil, nil
	}
	return copyItem(item), nil
}

func (t *InMemoryTable) Put(_ context.Context, item Item) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.items[t.keyOf(item)] = copyItem(item)
	return nil
}

func (t *InMemoryTable) PutIfAbsent(_ context.Context, item Item) (bool, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	key := t.keyOf(item)
	if _, ok := t.items[key]; ok {
		return false, nil
	}
	t.items[key] = copyItem(item)
	return true, nil
}

func (t *InMemoryTable) UpdateAttribute(_ context.Context, key Item, attribute string, value types.AttributeValue) (UpdateResult, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	item, ok := t.items[t.keyOf(key)]
	if !ok {
		return UpdateResult{Outcome: UpdateNotFound}, nil
	}
	previous, present := item[attribute]
	if present && attributeEqual(previous, value) {
		return UpdateResult{Outcome: UpdateUnchanged}, nil
	}
	item[attribute] = value
	if !present {
		return UpdateResult{Outcome: UpdateApplied}, nil
	}
	return UpdateResult{Outcome: UpdateApplied, Previous: previous}, nil
}

func (t *InMemoryTable) Delete(_ context.Context, key Item) (bool, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	k := t.keyOf(key)
	if _, ok := t.items[k]; !ok {
		return false, nil
	}
	delete(t.items, k)
	return true, nil
}

func (t *InMemoryTable) Query(_ context.Context, value types.AttributeValue) ([]Item, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	var items []Item
	for _, item := range t.items {
		if attributeEqual(item[t.partitionKey], value) {
			items = append(items, copyItem(item))
		}
	}
	return items, nil
}

func (t *InMemoryTable) Scan(_ context.Context) ([]Item, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	items := make([]Item, 0, len(t.items))
	for _, item := range t.items {
		items = append(items, copyItem(item))
	}
	return items, nil
}

func (t *InMemoryTable) ScanFilter(_ context.Context, attribute string, value types.AttributeValue) ([]Item, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	var items []Item
	for _, item := range t.items {
		if existing, ok := item[attribute]; ok && attributeEqual(existing, value) {
			items = append(items, copyItem(item))
		}
	}
	return items, nil
}

func copyItem(item Item) Item {
	copied := make(Item, len(item))
	for k, v := range item {
		copied[k] = v
	}
	return copied
}
