package storage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDynamoDBAPI struct{ mock.Mock }

func (m *mockDynamoDBAPI) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	called := m.Called(ctx, params, optFns)
	return called.Get(0).(*dynamodb.GetItemOutput), called.Error(1)
}

func (m *mockDynamoDBAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	called := m.Called(ctx, params, optFns)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(*dynamodb.PutItemOutput), called.Error(1)
}

func (m *mockDynamoDBAPI) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	called := m.Called(ctx, params, optFns)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(*dynamodb.UpdateItemOutput), called.Error(1)
}

func (m *mockDynamoDBAPI) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	called := m.Called(ctx, params, optFns)
	if called.Get(0) == nil {
		return nil, called.Error(1)
	}
	return called.Get(0).(*dynamodb.DeleteItemOutput), called.Error(1)
}

func (m *mockDynamoDBAPI) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	called := m.Called(ctx, params, optFns)
	return called.Get(0).(*dynamodb.QueryOutput), called.Error(1)
}

func (m *mockDynamoDBAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	called := m.Called(ctx, params, optFns)
	return called.Get(0).(*dynamodb.ScanOutput), called.Error(1)
}

func TestDynamoDBTableUpdateAttribute(t *testing.T) {
	ctx := context.Background()
	key := Item{"event_id": s("e1")}

	t.Run("applied returns previous attribute value", func(t *testing.T) {
		client := &mockDynamoDBAPI{}
		client.
			On("UpdateItem", ctx, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
				return *input.TableName == "Event" &&
					*input.UpdateExpression == "SET #attr = :value" &&
					input.ExpressionAttributeNames["#attr"] == "location"
			}), mock.Anything).
			Return(&dynamodb.UpdateItemOutput{
				Attributes: Item{"location": s("A")},
			}, nil)
		table := NewDynamoDBTable(client, "Event", "event_id", "")

		result, err := table.UpdateAttribute(ctx, key, "location", s("B"))
		require.NoError(t, err)
		require.Equal(t, UpdateApplied, result.Outcome)
		require.Equal(t, "A", AttributeString(result.Previous))
		client.AssertExpectations(t)
	})

	t.Run("condition failure without item means not found", func(t *testing.T) {
		client := &mockDynamoDBAPI{}
		client.
			On("UpdateItem", ctx, mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")})
		table := NewDynamoDBTable(client, "Event", "event_id", "")

		result, err := table.UpdateAttribute(ctx, key, "location", s("B"))
		require.NoError(t, err)
		require.Equal(t, UpdateNotFound, result.Outcome)
	})

	t.Run("condition failure with item means unchanged", func(t *testing.T) {
		client := &mockDynamoDBAPI{}
		client.
			On("UpdateItem", ctx, mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{
				Message: aws.String("conditional request failed"),
				Item:    Item{"event_id": s("e1"), "location": s("B")},
			})
		table := NewDynamoDBTable(client, "Event", "event_id", "")

		result, err := table.UpdateAttribute(ctx, key, "location", s("B"))
		require.NoError(t, err)
		require.Equal(t, UpdateUnchanged, result.Outcome)
	})
}

func TestDynamoDBTablePutIfAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		client := &mockDynamoDBAPI{}
		client.
			On("PutItem", ctx, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
				return *input.ConditionExpression == "attribute_not_exists(#pk)" &&
					input.ExpressionAttributeNames["#pk"] == "event_id"
			}), mock.Anything).
			Return(&dynamodb.PutItemOutput{}, nil)
		table := NewDynamoDBTable(client, "Event", "event_id", "")

		added, err := table.PutIfAbsent(ctx, Item{"event_id": s("e1")})
		require.NoError(t, err)
		require.True(t, added)
		client.AssertExpectations(t)
	})

	t.Run("present", func(t *testing.T) {
		client := &mockDynamoDBAPI{}
		client.
			On("PutItem", ctx, mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")})
		table := NewDynamoDBTable(client, "Event", "event_id", "")

		added, err := table.PutIfAbsent(ctx, Item{"event_id": s("e1")})
		require.NoError(t, err)
		require.False(t, added)
	})
}

func TestDynamoDBTableDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("present", func(t *testing.T) {
		client := &mockDynamoDBAPI{}
		client.
			On("DeleteItem", ctx, mock.Anything, mock.Anything).
			Return(&dynamodb.DeleteItemOutput{}, nil)
		table := NewDynamoDBTable(client, "Event", "event_id", "")

		deleted, err := table.Delete(ctx, Item{"event_id": s("e1")})
		require.NoError(t, err)
		require.True(t, deleted)
	})

	t.Run("absent", func(t *testing.T) {
		client := &mockDynamoDBAPI{}
		client.
			On("DeleteItem", ctx, mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")})
		table := NewDynamoDBTable(client, "Event", "event_id", "")

		deleted, err := table.Delete(ctx, Item{"event_id": s("e1")})
		require.NoError(t, err)
		require.False(t, deleted)
	})
}
