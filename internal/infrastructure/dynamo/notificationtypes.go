package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/storefront-api-nosql/internal/domain"
)

// NotificationTypeRepo provides DynamoDB operations for the notification
// types table. Types carry arbitrary attributes beyond their key, so items
// are stored and returned as raw maps.
type NotificationTypeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNotificationTypeRepo(client *dynamodb.Client, tableName string) *NotificationTypeRepo {
	return &NotificationTypeRepo{client: client, tableName: tableName}
}

func (r *NotificationTypeRepo) Put(ctx context.Context, t domain.NotificationType) error {
	item, err := attributevalue.MarshalMap(map[string]interface{}(t))
	if err != nil {
		return fmt.Errorf("marshal notification type: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *NotificationTypeRepo) Get(ctx context.Context, typeID string) (domain.NotificationType, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("typeId", typeID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("notification type not found: %w", domain.ErrNotFound)
	}
	var t domain.NotificationType
	if err := attributevalue.UnmarshalMap(out.Item, &t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *NotificationTypeRepo) Scan(ctx context.Context) ([]domain.NotificationType, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	typesList := []domain.NotificationType{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &typesList); err != nil {
		return nil, err
	}
	return typesList, nil
}

// Delete removes a notification type and returns its prior image.
func (r *NotificationTypeRepo) Delete(ctx context.Context, typeID string) (domain.NotificationType, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          strKey("typeId", typeID),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, err
	}
	if len(out.Attributes) == 0 {
		return nil, fmt.Errorf("notification type not found: %w", domain.ErrNotFound)
	}
	var t domain.NotificationType
	if err := attributevalue.UnmarshalMap(out.Attributes, &t); err != nil {
		return nil, err
	}
	return t, nil
}
