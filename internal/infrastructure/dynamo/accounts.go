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

// AccountRepo provides typed DynamoDB operations for the accounts table.
// The table holds both user and preference records under a composite
// (id, dataType) key.
type AccountRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAccountRepo(client *dynamodb.Client, tableName string) *AccountRepo {
	return &AccountRepo{client: client, tableName: tableName}
}

func (r *AccountRepo) key(id, dataType string) map[string]types.AttributeValue {
	return compositeKey("id", id, "dataType", dataType)
}

func (r *AccountRepo) PutAccount(ctx context.Context, a *domain.Account) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal account: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *AccountRepo) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(id, domain.DataTypeUser),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("account not found: %w", domain.ErrNotFound)
	}
	var a domain.Account
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Scan lists user records (never preference records), narrowed by whichever
// filter fields are set. Employee/customer selection keys off job_position
// attribute existence.
func (r *AccountRepo) Scan(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	var f filterExpr
	f.equals("dataType", ":dataType", domain.DataTypeUser)
	if filter.Active != nil {
		f.equals(fieldActive, ":active", *filter.Active)
	}
	switch filter.Type {
	case domain.AccountTypeEmployee:
		f.exists("job_position", true)
	case domain.AccountTypeCustomer:
		f.exists("job_position", false)
	}

	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(f.expression()),
		ExpressionAttributeValues: f.values,
	})
	if err != nil {
		return nil, err
	}
	accounts := []domain.Account{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateActivity sets the active flag and lastActive stamp on a user record
// and returns the full updated record (ALL_NEW).
func (r *AccountRepo) UpdateActivity(ctx context.Context, id string, active bool, lastActive string) (*domain.Account, error) {
	ue, err := buildUpdateExpr(map[string]interface{}{
		fieldActive:     active,
		fieldLastActive: lastActive,
	})
	if err != nil {
		return nil, err
	}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(id, domain.DataTypeUser),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, err
	}
	var a domain.Account
	if err := attributevalue.UnmarshalMap(out.Attributes, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAccount removes a user record and returns its prior image.
func (r *AccountRepo) DeleteAccount(ctx context.Context, id string) (*domain.Account, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          r.key(id, domain.DataTypeUser),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, err
	}
	if len(out.Attributes) == 0 {
		return nil, fmt.Errorf("account not found: %w", domain.ErrNotFound)
	}
	var a domain.Account
	if err := attributevalue.UnmarshalMap(out.Attributes, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) PutPreferences(ctx context.Context, p *domain.Preferences) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *AccountRepo) GetPreferences(ctx context.Context, id string) (*domain.Preferences, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(id, domain.DataTypePreferences),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("preferences not found: %w", domain.ErrNotFound)
	}
	var p domain.Preferences
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePreferences removes a preference record and returns its prior image.
func (r *AccountRepo) DeletePreferences(ctx context.Context, id string) (*domain.Preferences, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          r.key(id, domain.DataTypePreferences),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, err
	}
	if len(out.Attributes) == 0 {
		return nil, fmt.Errorf("preferences not found: %w", domain.ErrNotFound)
	}
	var p domain.Preferences
	if err := attributevalue.UnmarshalMap(out.Attributes, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
