package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// EnsureTables creates any missing table with its indexes. It is meant for
// local DynamoDB; provisioned environments manage tables outside the app.
func (s *DynamoStore) EnsureTables(ctx context.Context) error {
	for _, in := range s.tableDefinitions() {
		_, err := s.ddb.CreateTable(ctx, in)
		if err == nil {
			continue
		}
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			continue
		}
		return errors.Wrapf(err, "create table %s", aws.ToString(in.TableName))
	}
	return nil
}

func (s *DynamoStore) tableDefinitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		tableDef(s.tables.Orders),
		tableDef(s.tables.OrderItems, gsi{orderIDIndex, "order_id"}),
		tableDef(s.tables.Routing, gsi{orderItemIDIndex, "order_item_id"}),
		tableDef(s.tables.Extensions, gsi{orderIDIndex, "order_id"}),
		tableDef(s.tables.Invoices),
		tableDef(s.tables.Commissions, gsi{invoiceIDIndex, "invoice_id"}, gsi{userIDIndex, "user_id"}),
		tableDef(s.tables.Workflows),
	}
}

type gsi struct {
	name string
	attr string
}

func tableDef(name string, indexes ...gsi) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for _, ix := range indexes {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(ix.attr), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(ix.name),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(ix.attr), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return &dynamodb.CreateTableInput{
		TableName:              aws.String(name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
