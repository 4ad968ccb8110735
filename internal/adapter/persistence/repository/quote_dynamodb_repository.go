package repository

import (
	"context"
	"sort"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesJobIDIndex       = "job_id-index"
)

type quoteLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type quoteItem struct {
	ID                   string          `dynamodbav:"id"`
	QuoteNumber          string          `dynamodbav:"quote_number"`
	JobID                string          `dynamodbav:"job_id"`
	Status               string          `dynamodbav:"status"`
	Items                []quoteLineItem `dynamodbav:"items"`
	Subtotal             string          `dynamodbav:"subtotal"`
	TaxRate              string          `dynamodbav:"tax_rate"`
	TaxAmount            string          `dynamodbav:"tax_amount"`
	TotalAmount          string          `dynamodbav:"total_amount"`
	IssueDate            string          `dynamodbav:"issue_date"`
	ValidUntil           string          `dynamodbav:"valid_until"`
	CustomerResponse     string          `dynamodbav:"customer_response,omitempty"`
	CustomerResponseDate string          `dynamodbav:"customer_response_date,omitempty"`
	RejectionReason      string          `dynamodbav:"rejection_reason,omitempty"`
	ReminderCount        int             `dynamodbav:"reminder_count"`
	LastReminderSent     string          `dynamodbav:"last_reminder_sent,omitempty"`
	ConvertedToInvoiceID string          `dynamodbav:"converted_to_invoice_id,omitempty"`
	CreatedAt            string          `dynamodbav:"created_at"`
	UpdatedAt            string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI job_id-index: job_id
//
// Line items are stored inline on the quote item; they are written once at
// issue time and never edited afterwards.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].CreatedAt.Before(quotes[j].CreatedAt) })
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]quoteLineItem, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, quoteLineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
		})
	}
	return quoteItem{
		ID:                   q.ID,
		QuoteNumber:          q.QuoteNumber,
		JobID:                q.JobID,
		Status:               string(q.Status),
		Items:                items,
		Subtotal:             floatToString(q.Subtotal),
		TaxRate:              floatToString(q.TaxRate),
		TaxAmount:            floatToString(q.TaxAmount),
		TotalAmount:          floatToString(q.TotalAmount),
		IssueDate:            timeToString(q.IssueDate),
		ValidUntil:           timeToString(q.ValidUntil),
		CustomerResponse:     string(q.CustomerResponse),
		CustomerResponseDate: timePtrToString(q.CustomerResponseDate),
		RejectionReason:      q.RejectionReason,
		ReminderCount:        q.ReminderCount,
		LastReminderSent:     timePtrToString(q.LastReminderSent),
		ConvertedToInvoiceID: q.ConvertedToInvoiceID,
		CreatedAt:            timeToString(q.CreatedAt),
		UpdatedAt:            timeToString(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.QuoteItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   stringToFloat(li.UnitPrice),
		})
	}
	return entities.Quote{
		ID:                   it.ID,
		QuoteNumber:          it.QuoteNumber,
		JobID:                it.JobID,
		Status:               entities.QuoteStatus(it.Status),
		Items:                items,
		Subtotal:             stringToFloat(it.Subtotal),
		TaxRate:              stringToFloat(it.TaxRate),
		TaxAmount:            stringToFloat(it.TaxAmount),
		TotalAmount:          stringToFloat(it.TotalAmount),
		IssueDate:            stringToTime(it.IssueDate),
		ValidUntil:           stringToTime(it.ValidUntil),
		CustomerResponse:     entities.QuoteResponse(it.CustomerResponse),
		CustomerResponseDate: stringToTimePtr(it.CustomerResponseDate),
		RejectionReason:      it.RejectionReason,
		ReminderCount:        it.ReminderCount,
		LastReminderSent:     stringToTimePtr(it.LastReminderSent),
		ConvertedToInvoiceID: it.ConvertedToInvoiceID,
		CreatedAt:            stringToTime(it.CreatedAt),
		UpdatedAt:            stringToTime(it.UpdatedAt),
	}
}
