// Package dynamodb implements the storage ports on AWS DynamoDB, one table
// per record type. Conditional update expressions carry the expected-status
// preconditions, so the optimistic concurrency the core relies on is enforced
// by the store itself.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cueshop/station-ledger/pkg/storage"
)

// DynamoDBAPI defines the DynamoDB client operations the store uses. Tests
// substitute a mock for the real client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client            DynamoDBAPI
	StationsTableName string
	SessionsTableName string
	CreditsTableName  string
	PaymentsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, stationsTable, sessionsTable, creditsTable, paymentsTable string) *Store {
	return &Store{
		Client:            client,
		StationsTableName: stationsTable,
		SessionsTableName: sessionsTable,
		CreditsTableName:  creditsTable,
		PaymentsTableName: paymentsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
