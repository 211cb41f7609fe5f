package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cueshop/station-ledger/pkg/models"
)

// AppendPayment stores a new payment log entry in DynamoDB. The log is
// append-only; no update or delete operation exists on this table.
func (s *Store) AppendPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	paymentAV, err := attributevalue.MarshalMap(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.PaymentsTableName),
		Item:                paymentAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append payment to DynamoDB: %w", err)
	}
	return payment, nil
}

// ListPayments retrieves all payment log entries from DynamoDB.
func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.PaymentsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments table: %w", err)
	}

	var payments []models.Payment
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &payments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payments: %w", err)
	}
	return payments, nil
}
