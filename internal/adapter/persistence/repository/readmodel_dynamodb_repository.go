package repository

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"claims_assessment/internal/domain/entities"
	"claims_assessment/internal/usecase/interfaces"
)

const (
	defaultEstimateBaselinesTableName = "estimate_baselines"
	defaultAdditionalsTableName       = "additionals"
)

// The estimate and additionals systems own these tables; this service only
// reads them. Each item is one document per assessment, normalized here into
// the canonical shapes the costing engine consumes.

type estimateBaselineItem struct {
	AssessmentID     string `dynamodbav:"assessment_id"`
	LinesJSON        string `dynamodbav:"lines"`
	EstimateSubtotal string `dynamodbav:"estimate_subtotal"`
	VATPercentage    string `dynamodbav:"vat_percentage"`
}

type additionalsItem struct {
	AssessmentID string `dynamodbav:"assessment_id"`
	LinesJSON    string `dynamodbav:"lines"`
}

type EstimateDynamoReader struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateReader = (*EstimateDynamoReader)(nil)

func NewEstimateDynamoReader(ddb *dynamodb.Client) *EstimateDynamoReader {
	return &EstimateDynamoReader{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_BASELINES_TABLE", defaultEstimateBaselinesTableName),
	}
}

func (r *EstimateDynamoReader) BaselineByAssessment(ctx context.Context, assessmentID string) (interfaces.EstimateBaseline, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return interfaces.EstimateBaseline{}, err
	}
	if len(out.Item) == 0 {
		return interfaces.EstimateBaseline{}, nil
	}

	var it estimateBaselineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return interfaces.EstimateBaseline{}, err
	}

	var lines []entities.BaselineLine
	if it.LinesJSON != "" {
		if err := json.Unmarshal([]byte(it.LinesJSON), &lines); err != nil {
			return interfaces.EstimateBaseline{}, err
		}
	}
	return interfaces.EstimateBaseline{
		Lines:            lines,
		EstimateSubtotal: decimalFromString(it.EstimateSubtotal),
		VATPercentage:    vatOrDefault(it.VATPercentage),
	}, nil
}

// The estimate system omits the VAT rate on legacy items; those predate rate
// configuration and were all written under the standard 15% rate.
func vatOrDefault(s string) decimal.Decimal {
	if s == "" {
		return decimal.NewFromInt(15)
	}
	return decimalFromString(s)
}

type AdditionalsDynamoReader struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdditionalsReader = (*AdditionalsDynamoReader)(nil)

func NewAdditionalsDynamoReader(ddb *dynamodb.Client) *AdditionalsDynamoReader {
	return &AdditionalsDynamoReader{
		ddb:       ddb,
		tableName: getenvDefault("ADDITIONALS_TABLE", defaultAdditionalsTableName),
	}
}

func (r *AdditionalsDynamoReader) ListByAssessment(ctx context.Context, assessmentID string) ([]entities.AdditionalLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it additionalsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}

	var lines []entities.AdditionalLine
	if it.LinesJSON != "" {
		if err := json.Unmarshal([]byte(it.LinesJSON), &lines); err != nil {
			return nil, err
		}
	}
	return lines, nil
}
