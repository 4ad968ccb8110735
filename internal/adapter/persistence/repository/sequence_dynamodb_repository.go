package repository

import (
	"context"
	"errors"
	"strconv"

	"reparotec/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// SequenceDynamoRepository backs document numbering with an atomic counter.
//
// Table requirements:
//   - PK: name (string), attribute seq (number)
//
// The ADD update is atomic on the server, so every caller gets a distinct
// value; no read-max-then-insert window exists.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return 0, errMissingSequenceAttr
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingSequenceAttr
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

var errMissingSequenceAttr = errors.New("counter update returned no seq attribute")
