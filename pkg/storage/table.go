// Package storage provides access to the key-value tables backing the service. Every
// entity kind lives in its own table holding flat attribute maps. The Table interface is
// the seam between repositories and the store; two implementations exist, one backed by
// DynamoDB and one in-memory for tests and local runs.
package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is one record, a flat mapping of attribute names to values.
type Item = map[string]types.AttributeValue

type UpdateOutcome int

const (
	// UpdateApplied means the attribute was written and its previous value returned.
	UpdateApplied UpdateOutcome = iota
	// UpdateUnchanged means the record exists and already holds the requested value; no
	// write took place.
	UpdateUnchanged
	// UpdateNotFound means no record exists under the given key.
	UpdateNotFound
)

// UpdateResult reports what a conditional attribute update did. Previous is only set
// for UpdateApplied, and is nil when the attribute was previously absent.
type UpdateResult struct {
	Outcome  UpdateOutcome
	Previous types.AttributeValue
}

// Table is a single key-value table. Conditional operations are atomic with respect to
// the underlying store; there is no separate read-then-write window.
type Table interface {
	// Get returns the record stored under key, or nil when absent.
	Get(ctx context.Context, key Item) (Item, error)
	// Put writes item unconditionally, replacing any record under the same key.
	Put(ctx context.Context, item Item) error
	// PutIfAbsent writes item only if no record exists under its key. It reports false
	// when a record was already present.
	PutIfAbsent(ctx context.Context, item Item) (bool, error)
	// UpdateAttribute sets a single attribute on the record under key, on condition that
	// the record exists and the attribute does not already hold value.
	UpdateAttribute(ctx context.Context, key Item, attribute string, value types.AttributeValue) (UpdateResult, error)
	// Delete removes the record under key, reporting false when it was absent.
	Delete(ctx context.Context, key Item) (bool, error)
	// Query returns all records whose partition key equals value.
	Query(ctx context.Context, value types.AttributeValue) ([]Item, error)
	// Scan returns every record in the table. No ordering is guaranteed.
	Scan(ctx context.Context) ([]Item, error)
	// ScanFilter returns every record whose named attribute equals value.
	ScanFilter(ctx context.Context, attribute string, value types.AttributeValue) ([]Item, error)
}

// AttributeString renders a scalar attribute value for display, as used by audit
// details.
func AttributeString(value types.AttributeValue) string {
	switch v := value.(type) {
	case nil:
		return ""
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	case *types.AttributeValueMemberBOOL:
		return strconv.FormatBool(v.Value)
	case *types.AttributeValueMemberNULL:
		return ""
	default:
		return fmt.Sprintf("%v", value)
	}
}

func attributeEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberNULL:
		_, ok := b.(*types.AttributeValueMemberNULL)
		return ok
	default:
		return false
	}
}
