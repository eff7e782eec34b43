package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the slice of the DynamoDB client this package uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// NewDynamoDBClient builds a DynamoDB client from the ambient AWS configuration. An
// endpoint override points the client at dynamodb-local.
func NewDynamoDBClient(ctx context.Context, region string, endpoint string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS configuration: %v", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewDynamoDBTable returns a Table backed by the named DynamoDB table. sortKey is empty
// for tables keyed by partition key alone.
func NewDynamoDBTable(client DynamoDBAPI, name string, partitionKey string, sortKey string) *DynamoDBTable {
	return &DynamoDBTable{
		client:       client,
		name:         name,
		partitionKey: partitionKey,
		sortKey:      sortKey,
	}
}

type DynamoDBTable struct {
	client       DynamoDBAPI
	name         string
	partitionKey string
	sortKey      string
}

func (t *DynamoDBTable) Get(ctx context.Context, key Item) (Item, error) {
	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("error reading from table %q: %v", t.name, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (t *DynamoDBTable) Put(ctx context.Context, item Item) error {
	_, err := t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("error writing to table %q: %v", t.name, err)
	}
	return nil
}

func (t *DynamoDBTable) PutIfAbsent(ctx context.Context, item Item) (bool, error) {
	_, err := t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": t.partitionKey},
	})
	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error writing to table %q: %v", t.name, err)
	}
	return true, nil
}

func (t *DynamoDBTable) UpdateAttribute(ctx context.Context, key Item, attribute string, value types.AttributeValue) (UpdateResult, error) {
	out, err := t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(t.name),
		Key:                 key,
		UpdateExpression:    aws.String("SET #attr = :value"),
		ConditionExpression: aws.String("attribute_exists(#pk) AND (attribute_not_exists(#attr) OR #attr <> :value)"),
		ExpressionAttributeNames: map[string]string{
			"#pk":   t.partitionKey,
			"#attr": attribute,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": value,
		},
		ReturnValues:                        types.ReturnValueUpdatedOld,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		// The failed-condition item tells not-found and no-op apart without another read.
		if len(conditionFailed.Item) == 0 {
			return UpdateResult{Outcome: UpdateNotFound}, nil
		}
		return UpdateResult{Outcome: UpdateUnchanged}, nil
	}
	if err != nil {
		return UpdateResult{}, fmt.Errorf("error updating table %q: %v", t.name, err)
	}
	return UpdateResult{Outcome: UpdateApplied, Previous: out.Attributes[attribute]}, nil
}

func (t *DynamoDBTable) Delete(ctx context.Context, key Item) (bool, error) {
	_, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(t.name),
		Key:                      key,
		ConditionExpression:      aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": t.partitionKey},
	})
	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error deleting from table %q: %v", t.name, err)
	}
	return true, nil
}

func (t *DynamoDBTable) Query(ctx context.Context, value types.AttributeValue) ([]Item, error) {
	paginator := dynamodb.NewQueryPaginator(t.client, &dynamodb.QueryInput{
		TableName:                aws.String(t.name),
		KeyConditionExpression:   aws.String("#pk = :value"),
		ExpressionAttributeNames: map[string]string{"#pk": t.partitionKey},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": value,
		},
	})

	var items []Item
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying table %q: %v", t.name, err)
		}
		for _, item := range page.Items {
			items = append(items, item)
		}
	}
	return items, nil
}

func (t *DynamoDBTable) Scan(ctx context.Context) ([]Item, error) {
	return t.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(t.name)})
}

func (t *DynamoDBTable) ScanFilter(ctx context.Context, attribute string, value types.AttributeValue) ([]Item, error) {
	return t.scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(t.name),
		FilterExpression:         aws.String("#attr = :value"),
		ExpressionAttributeNames: map[string]string{"#attr": attribute},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": value,
		},
	})
}

func (t *DynamoDBTable) scan(ctx context.Context, input *dynamodb.ScanInput) ([]Item, error) {
	paginator := dynamodb.NewScanPaginator(t.client, input)

	var items []Item
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error scanning table %q: %v", t.name, err)
		}
		for _, item := range page.Items {
			items = append(items, item)
		}
	}
	return items, nil
}
