package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

func ProvideConfig() Config {
	return Config{
		BasePath: envOrDefault("BASE_PATH", ""),
		AWS: awsConfig{
			Region:   requireEnv("AWS_REGION"),
			Endpoint: envOrDefault("DYNAMODB_ENDPOINT", ""),
		},
		Tables: tables{
			Events:    envOrDefault("EVENTS_TABLE", "Event"),
			Groups:    envOrDefault("GROUPS_TABLE", "Group"),
			Comments:  envOrDefault("COMMENTS_TABLE", "Comment"),
			Relations: envOrDefault("RELATIONS_TABLE", "EventMemberRelation"),
			Logs:      envOrDefault("LOGS_TABLE", "EventsLog"),
		},
		RabbitMQ: rabbitmq{
			Host:     requireEnv("RABBITMQ_HOST"),
			Port:     requireEnvAsInt("RABBITMQ_PORT"),
			Username: requireEnv("RABBITMQ_USERNAME"),
			Password: requireEnv("RABBITMQ_PASSWORD"),
		},
	}
}

type Config struct {
	BasePath string
	AWS      awsConfig
	Tables   tables
	RabbitMQ rabbitmq
}

type awsConfig struct {
	Region string
	// Endpoint overrides the DynamoDB endpoint, used to run against dynamodb-local.
	Endpoint string
}

type tables struct {
	Events    string
	Groups    string
	Comments  string
	Relations string
	Logs      string
}

type rabbitmq struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (r rabbitmq) GetUrl() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", r.Username, r.Password, r.Host, r.Port)
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}

func envOrDefault(key string, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
