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
	defaultPaymentsTableName = "payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	InvoiceID         string `dynamodbav:"invoice_id"`
	Amount            string `dynamodbav:"amount"`
	Method            string `dynamodbav:"method"`
	Date              string `dynamodbav:"date"`
	Reference         string `dynamodbav:"reference,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
	GatewayPaymentID  string `dynamodbav:"gateway_payment_id,omitempty"`
	GatewayPayloadRaw string `dynamodbav:"gateway_payload_raw,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository reads the payment ledger. Writes go through
// InvoiceDynamoRepository.ApplyPayment only, so the ledger rows stay
// immutable.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].CreatedAt.Before(payments[j].CreatedAt) })
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		Amount:            floatToString(p.Amount),
		Method:            string(p.Method),
		Date:              timeToString(p.Date),
		Reference:         p.Reference,
		Notes:             p.Notes,
		GatewayPaymentID:  p.GatewayPaymentID,
		GatewayPayloadRaw: string(p.GatewayPayloadRaw),
		CreatedAt:         timeToString(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		Amount:            stringToFloat(it.Amount),
		Method:            entities.PaymentMethod(it.Method),
		Date:              stringToTime(it.Date),
		Reference:         it.Reference,
		Notes:             it.Notes,
		GatewayPaymentID:  it.GatewayPaymentID,
		GatewayPayloadRaw: []byte(it.GatewayPayloadRaw),
		CreatedAt:         stringToTime(it.CreatedAt),
	}
}
