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

// GetStation retrieves a station from DynamoDB by its ID.
func (s *Store) GetStation(ctx context.Context, stationID string) (*models.Station, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": stationID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal station ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.StationsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get station from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrStationNotFound
	}

	var station models.Station
	if err := attributevalue.UnmarshalMap(result.Item, &station); err != nil {
		return nil, fmt.Errorf("failed to unmarshal station: %w", err)
	}
	return &station, nil
}

// ListStations retrieves all stations from DynamoDB.
func (s *Store) ListStations(ctx context.Context) ([]models.Station, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.StationsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stations table: %w", err)
	}

	var stations []models.Station
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &stations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stations: %w", err)
	}
	return stations, nil
}

// CreateStation creates a new station record in DynamoDB.
func (s *Store) CreateStation(ctx context.Context, station *models.Station) (*models.Station, error) {
	stationAV, err := attributevalue.MarshalMap(station)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal station: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.StationsTableName),
		Item:                stationAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"), // Prevent overwriting existing stations.
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrStationExists
		}
		return nil, fmt.Errorf("failed to create station in DynamoDB: %w", err)
	}
	return station, nil
}

// UpdateStation applies the non-nil fields of the update to a station.
func (s *Store) UpdateStation(ctx context.Context, stationID string, upd storage.StationUpdate) (*models.Station, error) {
	b := newUpdateBuilder()
	if upd.Name != nil {
		b.set("name", *upd.Name)
	}
	if upd.Type != nil {
		b.set("type", *upd.Type)
	}
	if upd.Status != nil {
		b.set("status", *upd.Status)
	}
	if upd.HourlyRate != nil {
		b.set("hourly_rate", *upd.HourlyRate)
	}
	if upd.ExpectStatus != nil {
		b.expectEquals("status", *upd.ExpectStatus)
	}

	input, err := b.input(s.StationsTableName, "id", stationID)
	if err != nil {
		return nil, err
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			if upd.ExpectStatus == nil {
				return nil, storage.ErrStationNotFound
			}
			return nil, storage.ErrPreconditionFailed
		}
		return nil, fmt.Errorf("failed to update station in DynamoDB: %w", err)
	}

	var station models.Station
	if err := attributevalue.UnmarshalMap(result.Attributes, &station); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated station: %w", err)
	}
	return &station, nil
}

// DeleteStation deletes a station record from DynamoDB.
func (s *Store) DeleteStation(ctx context.Context, stationID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"id": stationID})
	if err != nil {
		return fmt.Errorf("failed to marshal station ID for deletion: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.StationsTableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(id)"), // Ensure the station exists before deleting.
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrStationNotFound
		}
		return fmt.Errorf("failed to delete station from DynamoDB: %w", err)
	}
	return nil
}
