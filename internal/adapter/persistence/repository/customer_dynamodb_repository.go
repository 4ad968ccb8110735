package repository

import (
	"context"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	customersPhoneIndex       = "phone-index"
	customersEmailIndex       = "email-index"
)

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	Type      string `dynamodbav:"type"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI phone-index: phone
//   - GSI email-index: email

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.Customer, error) {
	return r.queryOne(ctx, customersPhoneIndex, "phone", phone)
}

func (r *CustomerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Customer, error) {
	return r.queryOne(ctx, customersEmailIndex, "email", email)
}

func (r *CustomerDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.Customer, error) {
	if value == "" {
		return entities.Customer{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#a = :v"),
		ExpressionAttributeNames: map[string]string{
			"#a": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Type:      string(c.Type),
		CreatedAt: timeToString(c.CreatedAt),
		UpdatedAt: timeToString(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		Type:      entities.CustomerType(it.Type),
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
