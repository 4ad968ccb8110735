package repository

import (
	"context"
	"errors"

	"reparotec/internal/domain/entities"
	"reparotec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesJobIDIndex       = "job_id-index"
)

type invoiceLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type invoiceDynamoItem struct {
	ID             string            `dynamodbav:"id"`
	InvoiceNumber  string            `dynamodbav:"invoice_number"`
	JobID          string            `dynamodbav:"job_id"`
	Status         string            `dynamodbav:"status"`
	Items          []invoiceLineItem `dynamodbav:"items"`
	Subtotal       string            `dynamodbav:"subtotal"`
	TaxRate        string            `dynamodbav:"tax_rate"`
	TaxAmount      string            `dynamodbav:"tax_amount"`
	DiscountAmount string            `dynamodbav:"discount_amount"`
	TotalAmount    string            `dynamodbav:"total_amount"`
	PaidAmount     string            `dynamodbav:"paid_amount"`
	BalanceAmount  string            `dynamodbav:"balance_amount"`
	DueDate        string            `dynamodbav:"due_date,omitempty"`
	Notes          string            `dynamodbav:"notes,omitempty"`
	Terms          string            `dynamodbav:"terms,omitempty"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - invoices: PK id, GSI job_id-index (job_id)
//   - payments: PK id, GSI invoice_id-index (invoice_id)
//
// ApplyPayment is the one write that must be transactional: the payment put
// and the invoice totals update go through TransactWriteItems, conditioned on
// paid_amount still holding the value the use case read. Two concurrent
// payments can therefore never overdraw the balance; the loser observes a
// cancelled transaction and retries from fresh state.

type InvoiceDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	paymentsTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		paymentsTable: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceDynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceDynamoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ApplyPayment writes the payment row and the new invoice totals atomically.
// A zero-value invoice with nil error means the paid_amount condition failed
// (a concurrent payment landed first) and the caller should retry.
func (r *InvoiceDynamoRepository) ApplyPayment(ctx context.Context, inv entities.Invoice, expectedPaid float64, p entities.Payment) (entities.Invoice, error) {
	invAV, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}
	payAV, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.paymentsTable),
					Item:                payAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                invAV,
					ConditionExpression: aws.String("attribute_exists(#id) AND #paid = :expected_paid"),
					ExpressionAttributeNames: map[string]string{
						"#id":   "id",
						"#paid": "paid_amount",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected_paid": &types.AttributeValueMemberS{Value: floatToString(expectedPaid)},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Invoice{}, nil
				}
			}
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceDynamoItem {
	items := make([]invoiceLineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, invoiceLineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
		})
	}
	return invoiceDynamoItem{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		JobID:          inv.JobID,
		Status:         string(inv.Status),
		Items:          items,
		Subtotal:       floatToString(inv.Subtotal),
		TaxRate:        floatToString(inv.TaxRate),
		TaxAmount:      floatToString(inv.TaxAmount),
		DiscountAmount: floatToString(inv.DiscountAmount),
		TotalAmount:    floatToString(inv.TotalAmount),
		PaidAmount:     floatToString(inv.PaidAmount),
		BalanceAmount:  floatToString(inv.BalanceAmount),
		DueDate:        timePtrToString(inv.DueDate),
		Notes:          inv.Notes,
		Terms:          inv.Terms,
		CreatedAt:      timeToString(inv.CreatedAt),
		UpdatedAt:      timeToString(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceDynamoItem) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.InvoiceItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   stringToFloat(li.UnitPrice),
		})
	}
	return entities.Invoice{
		ID:             it.ID,
		InvoiceNumber:  it.InvoiceNumber,
		JobID:          it.JobID,
		Status:         entities.InvoiceStatus(it.Status),
		Items:          items,
		Subtotal:       stringToFloat(it.Subtotal),
		TaxRate:        stringToFloat(it.TaxRate),
		TaxAmount:      stringToFloat(it.TaxAmount),
		DiscountAmount: stringToFloat(it.DiscountAmount),
		TotalAmount:    stringToFloat(it.TotalAmount),
		PaidAmount:     stringToFloat(it.PaidAmount),
		BalanceAmount:  stringToFloat(it.BalanceAmount),
		DueDate:        stringToTimePtr(it.DueDate),
		Notes:          it.Notes,
		Terms:          it.Terms,
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
