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
	defaultJobsTableName       = "jobs"
	defaultJobHistoryTableName = "job_status_history"
	jobsNumberIndex            = "job_number-index"
	jobsCustomerIDIndex        = "customer_id-index"
	jobHistoryJobIDIndex       = "job_id-index"
)

type jobItem struct {
	ID                   string `dynamodbav:"id"`
	JobNumber            string `dynamodbav:"job_number"`
	CustomerID           string `dynamodbav:"customer_id"`
	ApplianceType        string `dynamodbav:"appliance_type"`
	ApplianceBrand       string `dynamodbav:"appliance_brand,omitempty"`
	ApplianceModel       string `dynamodbav:"appliance_model,omitempty"`
	ApplianceSerial      string `dynamodbav:"appliance_serial,omitempty"`
	IssueDescription     string `dynamodbav:"issue_description"`
	DiagnosticNotes      string `dynamodbav:"diagnostic_notes,omitempty"`
	Priority             string `dynamodbav:"priority"`
	Status               string `dynamodbav:"status"`
	Technician           string `dynamodbav:"technician,omitempty"`
	LaborHours           string `dynamodbav:"labor_hours"`
	EstimatedCompletion  string `dynamodbav:"estimated_completion,omitempty"`
	ActualCompletion     string `dynamodbav:"actual_completion,omitempty"`
	QuoteSentAt          string `dynamodbav:"quote_sent_at,omitempty"`
	LastNotificationSent string `dynamodbav:"last_notification_sent,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

type jobHistoryItem struct {
	ID         string `dynamodbav:"id"`
	JobID      string `dynamodbav:"job_id"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	Notes      string `dynamodbav:"notes,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// JobDynamoRepository persists Job entities and their status history.
//
// Table requirements:
//   - jobs: PK id, GSI job_number-index (job_number), GSI customer_id-index
//   - job_status_history: PK id, GSI job_id-index (job_id)
//
// History rows are write-once: the put carries attribute_not_exists and no
// update path exists.

type JobDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	historyTable string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("JOBS_TABLE", defaultJobsTableName),
		historyTable: getenvDefault("JOB_HISTORY_TABLE", defaultJobHistoryTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) GetByNumber(ctx context.Context, jobNumber string) (entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsNumberIndex),
		KeyConditionExpression: aws.String("job_number = :n"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: jobNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Items) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalJobs(out.Items)
}

// ListActive scans for jobs outside CLOSED/CANCELLED. The jobs table stays
// small enough (one shop) that a filtered scan is acceptable here.
func (r *JobDynamoRepository) ListActive(ctx context.Context) ([]entities.Job, error) {
	var jobs []entities.Job
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("NOT (#status IN (:closed, :cancelled))"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":closed":    &types.AttributeValueMemberS{Value: string(entities.JobStatusClosed)},
				":cancelled": &types.AttributeValueMemberS{Value: string(entities.JobStatusCancelled)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalJobs(out.Items)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return jobs, nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) AppendHistory(ctx context.Context, h entities.JobStatusHistory) (entities.JobStatusHistory, error) {
	av, err := attributevalue.MarshalMap(jobHistoryItem{
		ID:         h.ID,
		JobID:      h.JobID,
		FromStatus: string(h.FromStatus),
		ToStatus:   string(h.ToStatus),
		Notes:      h.Notes,
		CreatedAt:  timeToString(h.CreatedAt),
	})
	if err != nil {
		return entities.JobStatusHistory{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.historyTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.JobStatusHistory{}, err
	}
	return h, nil
}

func (r *JobDynamoRepository) ListHistory(ctx context.Context, jobID string) ([]entities.JobStatusHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.historyTable),
		IndexName:              aws.String(jobHistoryJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	rows := make([]entities.JobStatusHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rows = append(rows, entities.JobStatusHistory{
			ID:         it.ID,
			JobID:      it.JobID,
			FromStatus: entities.JobStatus(it.FromStatus),
			ToStatus:   entities.JobStatus(it.ToStatus),
			Notes:      it.Notes,
			CreatedAt:  stringToTime(it.CreatedAt),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	return rows, nil
}

func unmarshalJobs(raws []map[string]types.AttributeValue) ([]entities.Job, error) {
	jobs := make([]entities.Job, 0, len(raws))
	for _, raw := range raws {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                   j.ID,
		JobNumber:            j.JobNumber,
		CustomerID:           j.CustomerID,
		ApplianceType:        j.ApplianceType,
		ApplianceBrand:       j.ApplianceBrand,
		ApplianceModel:       j.ApplianceModel,
		ApplianceSerial:      j.ApplianceSerial,
		IssueDescription:     j.IssueDescription,
		DiagnosticNotes:      j.DiagnosticNotes,
		Priority:             string(j.Priority),
		Status:               string(j.Status),
		Technician:           j.Technician,
		LaborHours:           floatToString(j.LaborHours),
		EstimatedCompletion:  timePtrToString(j.EstimatedCompletion),
		ActualCompletion:     timePtrToString(j.ActualCompletion),
		QuoteSentAt:          timePtrToString(j.QuoteSentAt),
		LastNotificationSent: timePtrToString(j.LastNotificationSent),
		CreatedAt:            timeToString(j.CreatedAt),
		UpdatedAt:            timeToString(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                   it.ID,
		JobNumber:            it.JobNumber,
		CustomerID:           it.CustomerID,
		ApplianceType:        it.ApplianceType,
		ApplianceBrand:       it.ApplianceBrand,
		ApplianceModel:       it.ApplianceModel,
		ApplianceSerial:      it.ApplianceSerial,
		IssueDescription:     it.IssueDescription,
		DiagnosticNotes:      it.DiagnosticNotes,
		Priority:             entities.JobPriority(it.Priority),
		Status:               entities.JobStatus(it.Status),
		Technician:           it.Technician,
		LaborHours:           stringToFloat(it.LaborHours),
		EstimatedCompletion:  stringToTimePtr(it.EstimatedCompletion),
		ActualCompletion:     stringToTimePtr(it.ActualCompletion),
		QuoteSentAt:          stringToTimePtr(it.QuoteSentAt),
		LastNotificationSent: stringToTimePtr(it.LastNotificationSent),
		CreatedAt:            stringToTime(it.CreatedAt),
		UpdatedAt:            stringToTime(it.UpdatedAt),
	}
}
