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

// GetSession retrieves a session from DynamoDB by its ID.
func (s *Store) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.SessionsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get session from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrSessionNotFound
	}

	var session models.Session
	if err := attributevalue.UnmarshalMap(result.Item, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// ListSessions retrieves all sessions from DynamoDB.
func (s *Store) ListSessions(ctx context.Context) ([]models.Session, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.SessionsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sessions table: %w", err)
	}

	var sessions []models.Session
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sessions: %w", err)
	}
	return sessions, nil
}

// AppendSession stores a newly started session in DynamoDB.
func (s *Store) AppendSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	sessionAV, err := attributevalue.MarshalMap(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.SessionsTableName),
		Item:                sessionAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append session to DynamoDB: %w", err)
	}
	return session, nil
}

// UpdateSession applies the non-nil fields of the update to a session. The
// ExpectStatus precondition rides on a condition expression, so a close of an
// already-closed session fails in the store, not just in the core's read.
func (s *Store) UpdateSession(ctx context.Context, sessionID string, upd storage.SessionUpdate) (*models.Session, error) {
	b := newUpdateBuilder()
	if upd.EndTime != nil {
		b.set("end_time", *upd.EndTime)
	}
	if upd.SuggestedAmount != nil {
		b.set("suggested_amount", *upd.SuggestedAmount)
	}
	if upd.PaidAmount != nil {
		b.set("paid_amount", *upd.PaidAmount)
	}
	if upd.Balance != nil {
		b.set("balance", *upd.Balance)
	}
	if upd.PaymentType != nil {
		b.set("payment_type", *upd.PaymentType)
	}
	if upd.CustomerName != nil {
		b.set("customer_name", *upd.CustomerName)
	}
	if upd.PaymentStatus != nil {
		b.set("payment_status", *upd.PaymentStatus)
	}
	if upd.ExpectStatus != nil {
		b.expectEquals("payment_status", *upd.ExpectStatus)
	}

	input, err := b.input(s.SessionsTableName, "id", sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			if upd.ExpectStatus == nil {
				return nil, storage.ErrSessionNotFound
			}
			return nil, storage.ErrPreconditionFailed
		}
		return nil, fmt.Errorf("failed to update session in DynamoDB: %w", err)
	}

	var session models.Session
	if err := attributevalue.UnmarshalMap(result.Attributes, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated session: %w", err)
	}
	return &session, nil
}
