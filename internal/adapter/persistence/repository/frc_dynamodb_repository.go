package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
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
	defaultFRCTableName   = "frc_records"
	assessmentIDIndexName = "assessment_id-index"
)

type frcItem struct {
	ID           string `dynamodbav:"id"`
	AssessmentID string `dynamodbav:"assessment_id"`
	Status       string `dynamodbav:"status"`

	// The snapshot is stored as one JSON document: it is read and replaced as
	// a unit, guarded by line_items_version.
	LineItemsJSON    string `dynamodbav:"line_items"`
	LineItemsVersion int64  `dynamodbav:"line_items_version"`

	QuotedEstimateSubtotal string `dynamodbav:"quoted_estimate_subtotal"`
	VATPercentage          string `dynamodbav:"vat_percentage"`

	ActualPartsNett   string `dynamodbav:"actual_parts_nett"`
	ActualLabour      string `dynamodbav:"actual_labour"`
	ActualPaint       string `dynamodbav:"actual_paint"`
	ActualOutworkNett string `dynamodbav:"actual_outwork_nett"`
	ActualMarkup      string `dynamodbav:"actual_markup"`
	ActualSubtotal    string `dynamodbav:"actual_subtotal"`
	ActualVAT         string `dynamodbav:"actual_vat"`
	ActualTotal       string `dynamodbav:"actual_total"`

	ActualAdditionalsPartsNett   string `dynamodbav:"actual_additionals_parts_nett"`
	ActualAdditionalsLabour      string `dynamodbav:"actual_additionals_labour"`
	ActualAdditionalsPaint       string `dynamodbav:"actual_additionals_paint"`
	ActualAdditionalsOutworkNett string `dynamodbav:"actual_additionals_outwork_nett"`
	ActualAdditionalsMarkup      string `dynamodbav:"actual_additionals_markup"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// FRCDynamoRepository persists FRCRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI assessment_id-index: assessment_id (string)
//
// CommitSnapshotCAS is the only write after creation. It conditions on the
// stored line_items_version and stores expectedVersion+1, so concurrent
// committers serialize on the version token and losers see ErrVersionConflict.

type FRCDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFRCRepository = (*FRCDynamoRepository)(nil)

func NewFRCDynamoRepository(ddb *dynamodb.Client) *FRCDynamoRepository {
	return &FRCDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FRC_RECORDS_TABLE", defaultFRCTableName),
	}
}

func (r *FRCDynamoRepository) Create(ctx context.Context, rec entities.FRCRecord) (entities.FRCRecord, error) {
	it, err := toFRCItem(rec)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FRCRecord{}, err
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
		return entities.FRCRecord{}, err
	}
	return rec, nil
}

func (r *FRCDynamoRepository) GetByID(ctx context.Context, id string) (entities.FRCRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.FRCRecord{}, nil
	}

	var it frcItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FRCRecord{}, err
	}
	return fromFRCItem(it)
}

func (r *FRCDynamoRepository) GetByAssessmentID(ctx context.Context, assessmentID string) (entities.FRCRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assessmentIDIndexName),
		KeyConditionExpression: aws.String("#assessment_id = :assessment_id"),
		ExpressionAttributeNames: map[string]string{
			"#assessment_id": "assessment_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.FRCRecord{}, nil
	}

	var it frcItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.FRCRecord{}, err
	}
	return fromFRCItem(it)
}

func (r *FRCDynamoRepository) CommitSnapshotCAS(ctx context.Context, rec entities.FRCRecord, expectedVersion int64) (entities.FRCRecord, error) {
	lineItemsJSON, err := json.Marshal(rec.LineItems)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	names := map[string]string{
		"#status":             "status",
		"#line_items":         "line_items",
		"#line_items_version": "line_items_version",
		"#updated_at":         "updated_at",
	}
	values := map[string]types.AttributeValue{
		":expected":   &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		":next":       &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		":status":     &types.AttributeValueMemberS{Value: string(rec.Status)},
		":line_items": &types.AttributeValueMemberS{Value: string(lineItemsJSON)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	expr := "SET #status = :status, #line_items = :line_items, #line_items_version = :next, #updated_at = :updated_at"

	aggregates := map[string]string{
		"actual_parts_nett":               decimalToString(rec.Actual.PartsNett),
		"actual_labour":                   decimalToString(rec.Actual.Labour),
		"actual_paint":                    decimalToString(rec.Actual.Paint),
		"actual_outwork_nett":             decimalToString(rec.Actual.OutworkNett),
		"actual_markup":                   decimalToString(rec.Actual.Markup),
		"actual_subtotal":                 decimalToString(rec.ActualSubtotal),
		"actual_vat":                      decimalToString(rec.ActualVAT),
		"actual_total":                    decimalToString(rec.ActualTotal),
		"actual_additionals_parts_nett":   decimalToString(rec.ActualAdditionals.PartsNett),
		"actual_additionals_labour":       decimalToString(rec.ActualAdditionals.Labour),
		"actual_additionals_paint":        decimalToString(rec.ActualAdditionals.Paint),
		"actual_additionals_outwork_nett": decimalToString(rec.ActualAdditionals.OutworkNett),
		"actual_additionals_markup":       decimalToString(rec.ActualAdditionals.Markup),
	}
	for attr, val := range aggregates {
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: val}
		expr += ", #" + attr + " = :" + attr
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rec.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #line_items_version = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FRCRecord{}, concurrency.ErrVersionConflict
		}
		return entities.FRCRecord{}, err
	}

	var it frcItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FRCRecord{}, err
	}
	return fromFRCItem(it)
}

func toFRCItem(rec entities.FRCRecord) (frcItem, error) {
	lineItemsJSON, err := json.Marshal(rec.LineItems)
	if err != nil {
		return frcItem{}, err
	}
	return frcItem{
		ID:           rec.ID,
		AssessmentID: rec.AssessmentID,
		Status:       string(rec.Status),

		LineItemsJSON:    string(lineItemsJSON),
		LineItemsVersion: rec.LineItemsVersion,

		QuotedEstimateSubtotal: decimalToString(rec.QuotedEstimateSubtotal),
		VATPercentage:          decimalToString(rec.VATPercentage),

		ActualPartsNett:   decimalToString(rec.Actual.PartsNett),
		ActualLabour:      decimalToString(rec.Actual.Labour),
		ActualPaint:       decimalToString(rec.Actual.Paint),
		ActualOutworkNett: decimalToString(rec.Actual.OutworkNett),
		ActualMarkup:      decimalToString(rec.Actual.Markup),
		ActualSubtotal:    decimalToString(rec.ActualSubtotal),
		ActualVAT:         decimalToString(rec.ActualVAT),
		ActualTotal:       decimalToString(rec.ActualTotal),

		ActualAdditionalsPartsNett:   decimalToString(rec.ActualAdditionals.PartsNett),
		ActualAdditionalsLabour:      decimalToString(rec.ActualAdditionals.Labour),
		ActualAdditionalsPaint:       decimalToString(rec.ActualAdditionals.Paint),
		ActualAdditionalsOutworkNett: decimalToString(rec.ActualAdditionals.OutworkNett),
		ActualAdditionalsMarkup:      decimalToString(rec.ActualAdditionals.Markup),

		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromFRCItem(it frcItem) (entities.FRCRecord, error) {
	var lineItems []entities.LineItem
	if it.LineItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.LineItemsJSON), &lineItems); err != nil {
			return entities.FRCRecord{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.FRCRecord{
		ID:           it.ID,
		AssessmentID: it.AssessmentID,
		Status:       entities.FRCStatus(it.Status),
		LineItems:    lineItems,

		LineItemsVersion: it.LineItemsVersion,

		QuotedEstimateSubtotal: decimalFromString(it.QuotedEstimateSubtotal),
		VATPercentage:          decimalFromString(it.VATPercentage),

		Actual: entities.LineValues{
			PartsNett:   decimalFromString(it.ActualPartsNett),
			Labour:      decimalFromString(it.ActualLabour),
			Paint:       decimalFromString(it.ActualPaint),
			OutworkNett: decimalFromString(it.ActualOutworkNett),
			Markup:      decimalFromString(it.ActualMarkup),
		},
		ActualSubtotal: decimalFromString(it.ActualSubtotal),
		ActualVAT:      decimalFromString(it.ActualVAT),
		ActualTotal:    decimalFromString(it.ActualTotal),
		ActualAdditionals: entities.LineValues{
			PartsNett:   decimalFromString(it.ActualAdditionalsPartsNett),
			Labour:      decimalFromString(it.ActualAdditionalsLabour),
			Paint:       decimalFromString(it.ActualAdditionalsPaint),
			OutworkNett: decimalFromString(it.ActualAdditionalsOutworkNett),
			Markup:      decimalFromString(it.ActualAdditionalsMarkup),
		},

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
