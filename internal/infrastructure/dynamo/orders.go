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

// OrderRepo provides typed DynamoDB operations for the orders table.
type OrderRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOrderRepo(client *dynamodb.Client, tableName string) *OrderRepo {
	return &OrderRepo{client: client, tableName: tableName}
}

func (r *OrderRepo) Put(ctx context.Context, o *domain.Order) error {
	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *OrderRepo) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("orderId", orderID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("order not found: %w", domain.ErrNotFound)
	}
	var o domain.Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Scan performs a full-table scan narrowed by whichever filter fields are set.
func (r *OrderRepo) Scan(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var f filterExpr
	if filter.AccountID != nil {
		f.equals("accountId", ":accountId", *filter.AccountID)
	}
	if filter.OrderStatus != nil {
		f.equals(fieldOrderStatus, ":orderStatus", *filter.OrderStatus)
	}
	if filter.DateCreated != nil {
		f.equals("dateCreated", ":dateCreated", *filter.DateCreated)
	}
	if expr := f.expression(); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeValues = f.values
	}

	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, err
	}
	orders := []domain.Order{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets orderStatus on an order and returns the updated
// attributes (UPDATED_NEW). The write is unconditional: last write wins,
// and an unknown orderId is upserted as a partial item.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID, orderStatus string) (map[string]interface{}, error) {
	ue, err := buildUpdateExpr(map[string]interface{}{fieldOrderStatus: orderStatus})
	if err != nil {
		return nil, err
	}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("orderId", orderID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return nil, err
	}
	updated := map[string]interface{}{}
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an order and returns its prior image.
func (r *OrderRepo) Delete(ctx context.Context, orderID string) (*domain.Order, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          strKey("orderId", orderID),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, err
	}
	if len(out.Attributes) == 0 {
		return nil, fmt.Errorf("order not found: %w", domain.ErrNotFound)
	}
	var o domain.Order
	if err := attributevalue.UnmarshalMap(out.Attributes, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
