// Command seed creates the service's DynamoDB tables and loads reference groups and
// events from a JSON file. It is meant for dynamodb-local and fresh environments, table
// creation is skipped when a table already exists.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gatherhub/event-manager/pkg/config"
	"github.com/gatherhub/event-manager/pkg/event"
	"github.com/gatherhub/event-manager/pkg/group"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gatherhub/event-manager/pkg/storage"
)

type seedData struct {
	Groups []model.Group `json:"groups"`
	Events []model.Event `json:"events"`
}

func main() {
	file := flag.String("file", "seed.json", "path to the seed data file")
	flag.Parse()

	if err := run(*file); err != nil {
		log.Fatal(err)
	}
}

func run(file string) error {
	cfg := config.ProvideConfig()

	ctx := context.Background()
	client, err := storage.NewDynamoDBClient(ctx, cfg.AWS.Region, cfg.AWS.Endpoint)
	if err != nil {
		return err
	}

	if err := createTables(ctx, client, cfg); err != nil {
		return err
	}

	data, err := readSeedData(file)
	if err != nil {
		return err
	}

	groups := group.NewRepository(storage.NewDynamoDBTable(client, cfg.Tables.Groups, "group_id", ""))
	for _, g := range data.Groups {
		if err := groups.Save(ctx, g); err != nil {
			return fmt.Errorf("error seeding group %q: %v", g.GroupID, err)
		}
	}

	events := event.NewRepository(storage.NewDynamoDBTable(client, cfg.Tables.Events, "event_id", ""))
	for _, e := range data.Events {
		if err := events.Replace(ctx, e); err != nil {
			return fmt.Errorf("error seeding event %q: %v", e.EventID, err)
		}
	}

	log.Printf("Seeded %d groups and %d events", len(data.Groups), len(data.Events))
	return nil
}

func readSeedData(file string) (seedData, error) {
	contents, err := os.ReadFile(file)
	if err != nil {
		return seedData{}, err
	}

	var data seedData
	if err := json.Unmarshal(contents, &data); err != nil {
		return seedData{}, fmt.Errorf("error parsing seed data: %v", err)
	}
	return data, nil
}

func createTables(ctx context.Context, client *dynamodb.Client, cfg config.Config) error {
	tables := []struct {
		name         string
		partitionKey string
		sortKey      string
	}{
		{cfg.Tables.Events, "event_id", ""},
		{cfg.Tables.Groups, "group_id", ""},
		{cfg.Tables.Comments, "comment_id", ""},
		{cfg.Tables.Relations, "event_id", "user_id"},
		{cfg.Tables.Logs, "log_id", ""},
	}

	for _, table := range tables {
		if err := createTable(ctx, client, table.name, table.partitionKey, table.sortKey); err != nil {
			return fmt.Errorf("error creating table %q: %v", table.name, err)
		}
	}
	return nil
}

func createTable(ctx context.Context, client *dynamodb.Client, name string, partitionKey string, sortKey string) error {
	definitions := []types.AttributeDefinition{
		{AttributeName: aws.String(partitionKey), AttributeType: types.ScalarAttributeTypeS},
	}
	schema := []types.KeySchemaElement{
		{AttributeName: aws.String(partitionKey), KeyType: types.KeyTypeHash},
	}
	if sortKey != "" {
		definitions = append(definitions, types.AttributeDefinition{
			AttributeName: aws.String(sortKey), AttributeType: types.ScalarAttributeTypeS,
		})
		schema = append(schema, types.KeySchemaElement{
			AttributeName: aws.String(sortKey), KeyType: types.KeyTypeRange,
		})
	}

	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		AttributeDefinitions: definitions,
		KeySchema:            schema,
		BillingMode:          types.BillingModePayPerRequest,
	})
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	return err
}
