package database

import (
	"context"
	"os"

	appconfig "fulfillment_engine/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
)

// ConnectDynamoDB creates a DynamoDB client from the app configuration.
//
// When DYNAMODB_ENDPOINT is set (e.g. http://dynamodb:8000) the client
// talks to that endpoint and falls back to static "local" credentials,
// since DynamoDB Local does not validate them but the SDK requires some.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg appconfig.DynamoConfig) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.Endpoint != "" {
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
