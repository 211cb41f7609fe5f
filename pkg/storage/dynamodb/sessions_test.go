package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage"
	"github.com/cueshop/station-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppendSession(t *testing.T) {
	session := &models.Session{
		Id:            "sess-1",
		StationId:     "st-1",
		StartTime:     time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		PaymentStatus: models.PENDING,
		PaymentType:   models.PENDING_MODE,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return input.ConditionExpression != nil && *input.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		store := newTestStore(mockClient)
		created, err := store.AppendSession(context.Background(), session)

		assert.NoError(t, err)
		assert.Equal(t, session, created)
		mockClient.AssertExpectations(t)
	})
}

func TestUpdateSession_CloseIsConditional(t *testing.T) {
	pending := models.PENDING
	paid := models.PAID
	now := time.Date(2024, 3, 1, 19, 30, 0, 0, time.UTC)
	suggested, paidAmt, balance := int64(150), int64(100), int64(50)

	closeUpd := storage.SessionUpdate{
		EndTime:         &now,
		SuggestedAmount: &suggested,
		PaidAmount:      &paidAmt,
		Balance:         &balance,
		PaymentStatus:   &paid,
		ExpectStatus:    &pending,
	}

	t.Run("Success", func(t *testing.T) {
		closed := &models.Session{Id: "sess-1", PaymentStatus: models.PAID, SuggestedAmount: 150, PaidAmount: 100, Balance: 50}
		attrs, err := attributevalue.MarshalMap(closed)
		require.NoError(t, err)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			// The close must carry a status precondition and never upsert.
			return input.ConditionExpression != nil && input.ReturnValues == types.ReturnValueAllNew
		})).Return(&dynamodb.UpdateItemOutput{Attributes: attrs}, nil)

		store := newTestStore(mockClient)
		got, err := store.UpdateSession(context.Background(), "sess-1", closeUpd)

		assert.NoError(t, err)
		assert.Equal(t, models.PAID, got.PaymentStatus)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Closed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := newTestStore(mockClient)
		_, err := store.UpdateSession(context.Background(), "sess-1", closeUpd)

		assert.ErrorIs(t, err, storage.ErrPreconditionFailed)
		mockClient.AssertExpectations(t)
	})
}

func TestListSessions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		sessions := []models.Session{
			{Id: "sess-1", PaymentStatus: models.PENDING},
			{Id: "sess-2", PaymentStatus: models.PAID},
		}
		items := make([]map[string]types.AttributeValue, len(sessions))
		for i := range sessions {
			item, err := attributevalue.MarshalMap(sessions[i])
			require.NoError(t, err)
			items[i] = item
		}

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: items}, nil)

		store := newTestStore(mockClient)
		got, err := store.ListSessions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, sessions, got)
		mockClient.AssertExpectations(t)
	})
}
