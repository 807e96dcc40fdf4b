package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"claims_assessment/internal/domain/concurrency"
	"claims_assessment/internal/domain/entities"
	"claims_assessment/internal/usecase/interfaces"
)

const (
	defaultAssessmentsTableName = "assessments"
	requestIDIndexName          = "request_id-index"
)

type assessmentItem struct {
	ID            string `dynamodbav:"id"`
	RequestID     string `dynamodbav:"request_id"`
	AppointmentID string `dynamodbav:"appointment_id,omitempty"`
	Stage         string `dynamodbav:"stage"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// AssessmentDynamoRepository persists Assessment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI request_id-index: request_id (string)
//
// Stage changes go through UpdateStageCAS only: a conditional update on the
// stored stage value. There is no unconditional stage write.

type AssessmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb *dynamodb.Client) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSESSMENTS_TABLE", defaultAssessmentsTableName),
	}
}

func (r *AssessmentDynamoRepository) Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	av, err := attributevalue.MarshalMap(toAssessmentItem(a))
	if err != nil {
		return entities.Assessment{}, err
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
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assessment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assessment{}, nil
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func (r *AssessmentDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Assessment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestIDIndexName),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Assessment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Assessment{}, nil
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

// UpdateStageCAS compares-and-sets the stage. A stage mismatch surfaces as
// concurrency.ErrStaleState so the caller refetches; nothing is written.
func (r *AssessmentDynamoRepository) UpdateStageCAS(ctx context.Context, id string, expected, to entities.Stage) (entities.Assessment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #stage = :expected"),
		UpdateExpression:    aws.String("SET #stage = :stage, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stage":      "stage",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":stage":      &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Assessment{}, concurrency.ErrStaleState
		}
		return entities.Assessment{}, err
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func (r *AssessmentDynamoRepository) SetAppointment(ctx context.Context, id string, appointmentID string) (entities.Assessment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #appointment_id = :appointment_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#appointment_id": "appointment_id",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":appointment_id": &types.AttributeValueMemberS{Value: appointmentID},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Assessment{}, nil
		}
		return entities.Assessment{}, err
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func toAssessmentItem(a entities.Assessment) assessmentItem {
	it := assessmentItem{
		ID:        a.ID,
		RequestID: a.RequestID,
		Stage:     string(a.Stage),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.AppointmentID != nil {
		it.AppointmentID = *a.AppointmentID
	}
	return it
}

func fromAssessmentItem(it assessmentItem) entities.Assessment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	a := entities.Assessment{
		ID:        it.ID,
		RequestID: it.RequestID,
		Stage:     entities.Stage(it.Stage),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.AppointmentID != "" {
		appointmentID := it.AppointmentID
		a.AppointmentID = &appointmentID
	}
	return a
}
