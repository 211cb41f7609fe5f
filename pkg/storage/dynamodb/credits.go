package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage"
)

// GetCredit retrieves a credit from DynamoDB by its ID.
func (s *Store) GetCredit(ctx context.Context, creditID string) (*models.Credit, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": creditID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credit ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.CreditsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get credit from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrCreditNotFound
	}

	var credit models.Credit
	if err := attributevalue.UnmarshalMap(result.Item, &credit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credit: %w", err)
	}
	return &credit, nil
}

// ListCredits retrieves all credits from DynamoDB.
func (s *Store) ListCredits(ctx context.Context) ([]models.Credit, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.CreditsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan credits table: %w", err)
	}

	var credits []models.Credit
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &credits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credits: %w", err)
	}
	return credits, nil
}

// AppendCredit stores a newly opened credit in DynamoDB.
func (s *Store) AppendCredit(ctx context.Context, credit *models.Credit) (*models.Credit, error) {
	creditAV, err := attributevalue.MarshalMap(credit)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credit: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.CreditsTableName),
		Item:                creditAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append credit to DynamoDB: %w", err)
	}
	return credit, nil
}

// UpdateCredit applies the non-nil fields of the update to a credit. The
// ExpectStatus precondition makes the unpaid-to-paid flip race-safe: the
// second of two concurrent settlements loses the conditional write.
func (s *Store) UpdateCredit(ctx context.Context, creditID string, upd storage.CreditUpdate) (*models.Credit, error) {
	b := newUpdateBuilder()
	if upd.Status != nil {
		b.set("status", *upd.Status)
	}
	if upd.ExpectStatus != nil {
		b.expectEquals("status", *upd.ExpectStatus)
	}

	input, err := b.input(s.CreditsTableName, "id", creditID)
	if err != nil {
		return nil, err
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			if upd.ExpectStatus == nil {
				return nil, storage.ErrCreditNotFound
			}
			return nil, storage.ErrPreconditionFailed
		}
		return nil, fmt.Errorf("failed to update credit in DynamoDB: %w", err)
	}

	var credit models.Credit
	if err := attributevalue.UnmarshalMap(result.Attributes, &credit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated credit: %w", err)
	}
	return &credit, nil
}
