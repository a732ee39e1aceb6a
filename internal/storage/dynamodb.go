package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/frauddesk/fraud-mcp/internal/domain"
)

// DynamoOptions configures the DynamoDB-backed store. The table is keyed by
// transactionId and carries two global secondary indexes: id-index (record
// ID) and userId-index.
type DynamoOptions struct {
	Region    string
	TableName string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// DynamoStore persists fraud records in a DynamoDB table. Transaction-ID
// uniqueness rides on a conditional put: the partition key is the
// transaction ID and the insert requires attribute_not_exists, so exactly
// one of two racing creates is accepted.
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
}

const (
	dynamoIDIndex   = "id-index"
	dynamoUserIndex = "userId-index"
)

// fraudItem is the DynamoDB representation of a FraudRecord. Timestamps are
// RFC3339Nano strings so lexicographic comparison matches chronological
// order in filter expressions.
type fraudItem struct {
	TransactionID  string  `dynamodbav:"transactionId"`
	ID             string  `dynamodbav:"id"`
	UserID         string  `dynamodbav:"userId"`
	Amount         float64 `dynamodbav:"amount"`
	Currency       string  `dynamodbav:"currency"`
	MerchantName   string  `dynamodbav:"merchantName"`
	FraudType      string  `dynamodbav:"fraudType"`
	Description    string  `dynamodbav:"description"`
	RiskLevel      string  `dynamodbav:"riskLevel"`
	CreatedAt      string  `dynamodbav:"createdAt"`
	DetectedAt     string  `dynamodbav:"detectedAt"`
	IPAddress      string  `dynamodbav:"ipAddress"`
	Location       string  `dynamodbav:"location"`
	IsVerified     bool    `dynamodbav:"isVerified"`
	AdditionalInfo string  `dynamodbav:"additionalInfo"`
}

// NewDynamoStore builds a store from the default AWS credential chain.
func NewDynamoStore(ctx context.Context, opts DynamoOptions) (*DynamoStore, error) {
	if opts.TableName == "" {
		return nil, errors.New("dynamodb table name is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return &DynamoStore{client: client, tableName: opts.TableName}, nil
}

func (s *DynamoStore) Insert(ctx context.Context, rec *domain.FraudRecord) error {
	item, err := attributevalue.MarshalMap(toItem(rec))
	if err != nil {
		return fmt.Errorf("marshal fraud record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(transactionId)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("put fraud record: %w", err)
	}
	return nil
}

func (s *DynamoStore) FindByID(ctx context.Context, id string) (*domain.FraudRecord, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		IndexName:                 aws.String(dynamoIDIndex),
		KeyConditionExpression:    aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":id": &types.AttributeValueMemberS{Value: id}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query by id: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, ErrNotFound
	}
	return unmarshalRecord(out.Items[0])
}

func (s *DynamoStore) FindByTransactionID(ctx context.Context, transactionID string) (*domain.FraudRecord, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"transactionId": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get by transaction id: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}
	return unmarshalRecord(out.Item)
}

func (s *DynamoStore) FindByUser(ctx context.Context, userID string) ([]*domain.FraudRecord, error) {
	var records []*domain.FraudRecord
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.tableName),
			IndexName:                 aws.String(dynamoUserIndex),
			KeyConditionExpression:    aws.String("userId = :userId"),
			ExpressionAttributeValues: map[string]types.AttributeValue{":userId": &types.AttributeValueMemberS{Value: userID}},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query by user: %w", err)
		}
		for _, item := range out.Items {
			rec, err := unmarshalRecord(item)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortNewestFirst(records)
	return records, nil
}

func (s *DynamoStore) FindByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]*domain.FraudRecord, error) {
	return s.scan(ctx, "riskLevel = :v", map[string]types.AttributeValue{
		":v": &types.AttributeValueMemberS{Value: string(level)},
	})
}

func (s *DynamoStore) FindCreatedSince(ctx context.Context, since time.Time) ([]*domain.FraudRecord, error) {
	return s.scan(ctx, "createdAt >= :v", map[string]types.AttributeValue{
		":v": &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
	})
}

func (s *DynamoStore) FindHighRiskUnverified(ctx context.Context) ([]*domain.FraudRecord, error) {
	return s.scan(ctx, "riskLevel = :level AND isVerified = :verified", map[string]types.AttributeValue{
		":level":    &types.AttributeValueMemberS{Value: string(domain.RiskHigh)},
		":verified": &types.AttributeValueMemberBOOL{Value: false},
	})
}

func (s *DynamoStore) UpdateVerification(ctx context.Context, id string, verified bool) error {
	rec, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"transactionId": &types.AttributeValueMemberS{Value: rec.TransactionID},
		},
		UpdateExpression:    aws.String("SET isVerified = :verified"),
		ConditionExpression: aws.String("attribute_exists(transactionId)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":verified": &types.AttributeValueMemberBOOL{Value: verified},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrNotFound
		}
		return fmt.Errorf("update verification: %w", err)
	}
	return nil
}

func (s *DynamoStore) Count(ctx context.Context) (int64, error) {
	return s.scanCount(ctx, "", nil)
}

func (s *DynamoStore) CountByRiskLevel(ctx context.Context, level domain.RiskLevel) (int64, error) {
	return s.scanCount(ctx, "riskLevel = :v", map[string]types.AttributeValue{
		":v": &types.AttributeValueMemberS{Value: string(level)},
	})
}

func (s *DynamoStore) CountUnverified(ctx context.Context) (int64, error) {
	return s.scanCount(ctx, "isVerified = :v", map[string]types.AttributeValue{
		":v": &types.AttributeValueMemberBOOL{Value: false},
	})
}

func (s *DynamoStore) Close(context.Context) error {
	// The DynamoDB client holds no connection state to release.
	return nil
}

func (s *DynamoStore) scan(ctx context.Context, filter string, values map[string]types.AttributeValue) ([]*domain.FraudRecord, error) {
	var records []*domain.FraudRecord
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(s.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan fraud records: %w", err)
		}
		for _, item := range out.Items {
			rec, err := unmarshalRecord(item)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortNewestFirst(records)
	return records, nil
}

func (s *DynamoStore) scanCount(ctx context.Context, filter string, values map[string]types.AttributeValue) (int64, error) {
	var total int64
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:         aws.String(s.tableName),
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		}
		if filter != "" {
			input.FilterExpression = aws.String(filter)
			input.ExpressionAttributeValues = values
		}

		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return 0, fmt.Errorf("count fraud records: %w", err)
		}
		total += int64(out.Count)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return total, nil
}

func toItem(rec *domain.FraudRecord) fraudItem {
	return fraudItem{
		TransactionID:  rec.TransactionID,
		ID:             rec.ID,
		UserID:         rec.UserID,
		Amount:         rec.Amount,
		Currency:       rec.Currency,
		MerchantName:   rec.MerchantName,
		FraudType:      rec.FraudType,
		Description:    rec.Description,
		RiskLevel:      string(rec.RiskLevel),
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		DetectedAt:     rec.DetectedAt.UTC().Format(time.RFC3339Nano),
		IPAddress:      rec.IPAddress,
		Location:       rec.Location,
		IsVerified:     rec.IsVerified,
		AdditionalInfo: rec.AdditionalInfo,
	}
}

func unmarshalRecord(item map[string]types.AttributeValue) (*domain.FraudRecord, error) {
	var it fraudItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return nil, fmt.Errorf("unmarshal fraud record: %w", err)
	}

	rec := &domain.FraudRecord{
		ID:             it.ID,
		UserID:         it.UserID,
		TransactionID:  it.TransactionID,
		Amount:         it.Amount,
		Currency:       it.Currency,
		MerchantName:   it.MerchantName,
		FraudType:      it.FraudType,
		Description:    it.Description,
		RiskLevel:      domain.RiskLevel(it.RiskLevel),
		IPAddress:      it.IPAddress,
		Location:       it.Location,
		IsVerified:     it.IsVerified,
		AdditionalInfo: it.AdditionalInfo,
	}
	if t, err := time.Parse(time.RFC3339Nano, it.CreatedAt); err == nil {
		rec.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, it.DetectedAt); err == nil {
		rec.DetectedAt = t
	}
	return rec, nil
}
