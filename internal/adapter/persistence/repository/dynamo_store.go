package repository

import (
	"context"
	"strconv"
	"time"

	"fulfillment_engine/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// DynamoAPI is the subset of *dynamodb.Client the store uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Tables names every table the store touches.
//
// Table requirements (PK is always id, string):
//   - order_items: GSI order_id-index (order_id)
//   - routing_events: GSI order_item_id-index (order_item_id)
//   - extension_requests: GSI order_id-index (order_id)
//   - commissions: GSI invoice_id-index (invoice_id), user_id-index (user_id)
type Tables struct {
	Orders      string
	OrderItems  string
	Routing     string
	Extensions  string
	Invoices    string
	Commissions string
	Workflows   string
}

const (
	orderIDIndex     = "order_id-index"
	orderItemIDIndex = "order_item_id-index"
	invoiceIDIndex   = "invoice_id-index"
	userIDIndex      = "user_id-index"

	// DynamoDB rejects transactions above this many actions.
	maxTransactItems = 100
)

// DynamoStore persists the fulfillment model in DynamoDB. Multi-row writes
// use TransactWriteItems with version conditions.
type DynamoStore struct {
	ddb    DynamoAPI
	tables Tables
}

func NewDynamoStore(ddb DynamoAPI, tables Tables) *DynamoStore {
	return &DynamoStore{ddb: ddb, tables: tables}
}

func (s *DynamoStore) Orders() *OrderDynamoRepository {
	return &OrderDynamoRepository{s: s}
}

func (s *DynamoStore) Items() *OrderItemDynamoRepository {
	return &OrderItemDynamoRepository{s: s}
}

func (s *DynamoStore) Routing() *RoutingEventDynamoRepository {
	return &RoutingEventDynamoRepository{s: s}
}

func (s *DynamoStore) Extensions() *ExtensionRequestDynamoRepository {
	return &ExtensionRequestDynamoRepository{s: s}
}

func (s *DynamoStore) Invoices() *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{s: s}
}

func (s *DynamoStore) Commissions() *CommissionDynamoRepository {
	return &CommissionDynamoRepository{s: s}
}

func (s *DynamoStore) Workflows() *WorkflowDynamoRepository {
	return &WorkflowDynamoRepository{s: s}
}

func (s *DynamoStore) getByID(ctx context.Context, table, id string, out any) (bool, error) {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, errors.Wrapf(err, "get %s/%s", table, id)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := unmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// queryIndex pages through a GSI equality query.
func (s *DynamoStore) queryIndex(ctx context.Context, table, index, attr, value string) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	var out []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "query %s.%s", table, index)
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func (s *DynamoStore) transact(ctx context.Context, items []types.TransactWriteItem) error {
	if len(items) > maxTransactItems {
		return entities.NewValidationError("items", "too many rows for a single write")
	}
	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

// isConditionFailure reports whether err is a failed condition, either on a
// single write or inside a cancelled transaction.
func isConditionFailure(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if r.Code != nil && (*r.Code == "ConditionalCheckFailed" || *r.Code == "TransactionConflict") {
				return true
			}
		}
	}
	return false
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func versionValue(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
