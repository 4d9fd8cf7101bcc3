package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/burakmert236/matchday/common/database"
	apperrors "github.com/burakmert236/matchday/common/errors"
)

// DynamoStore maps each storage key to a single-table item whose payload
// attribute carries the JSON blob.
type DynamoStore struct {
	db *database.DynamoDBClient
}

type dynamoRecord struct {
	PK      string `dynamodbav:"PK"`
	SK      string `dynamodbav:"SK"`
	Payload string `dynamodbav:"payload"`
}

func NewDynamoStore(db *database.DynamoDBClient) *DynamoStore {
	return &DynamoStore{db: db}
}

// Key handlers

func StorePK(key string) string {
	return fmt.Sprintf("STORE#%s", key)
}

func BlobSK() string {
	return "BLOB"
}

func (d *DynamoStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	result, err := d.db.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: StorePK(key)},
			"SK": &types.AttributeValueMemberS{Value: BlobSK()},
		},
	})
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to read key "+key)
	}

	if result.Item == nil {
		return false, nil
	}

	var record dynamoRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return false, nil
	}

	if err := json.Unmarshal([]byte(record.Payload), dest); err != nil {
		return false, nil
	}

	return true, nil
}

func (d *DynamoStore) Set(ctx context.Context, key string, value interface{}) error {
	item, err := d.marshalRecord(key, value)
	if err != nil {
		return err
	}

	_, err = d.db.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.db.Table()),
		Item:      item,
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to write key "+key)
	}

	return nil
}

// SetMulti lands all entries in a single DynamoDB transaction, so the
// inconsistency window the other backends document does not exist here.
func (d *DynamoStore) SetMulti(ctx context.Context, entries []Entry) error {
	tb := database.NewTransactionBuilder()

	for _, entry := range entries {
		item, err := d.marshalRecord(entry.Key, entry.Value)
		if err != nil {
			return err
		}
		if err := tb.AddPut(types.Put{
			TableName: aws.String(d.db.Table()),
			Item:      item,
		}); err != nil {
			return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to build multi-key write")
		}
	}

	if err := tb.Execute(ctx, d.db.Client); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to execute multi-key write")
	}

	return nil
}

func (d *DynamoStore) Remove(ctx context.Context, key string) error {
	_, err := d.db.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: StorePK(key)},
			"SK": &types.AttributeValueMemberS{Value: BlobSK()},
		},
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to remove key "+key)
	}

	return nil
}

func (d *DynamoStore) marshalRecord(key string, value interface{}) (map[string]types.AttributeValue, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal value for key "+key)
	}

	item, err := attributevalue.MarshalMap(dynamoRecord{
		PK:      StorePK(key),
		SK:      BlobSK(),
		Payload: string(raw),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal record for key "+key)
	}

	return item, nil
}
