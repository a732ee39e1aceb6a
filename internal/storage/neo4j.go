package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/frauddesk/fraud-mcp/internal/domain"
)

// Neo4jOptions configures the Neo4j-backed store.
type Neo4jOptions struct {
	URI      string
	Database string
	Username string
	Password string
}

// Neo4jStore persists fraud records as (:FraudRecord) nodes. Transaction-ID
// uniqueness is enforced with MERGE on the transactionId property, so two
// concurrent inserts for the same transaction resolve to a single node and
// the loser observes the winner's record ID.
type Neo4jStore struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jStore connects with the official Bolt driver and verifies
// connectivity before returning.
func NewNeo4jStore(ctx context.Context, opts Neo4jOptions) (*Neo4jStore, error) {
	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	return &Neo4jStore{driver: driver, database: opts.Database}, nil
}

const fraudRecordReturn = `RETURN r.id AS id, r.userId AS userId, r.transactionId AS transactionId,
       r.amount AS amount, r.currency AS currency, r.merchantName AS merchantName,
       r.fraudType AS fraudType, r.description AS description, r.riskLevel AS riskLevel,
       r.createdAt AS createdAt, r.detectedAt AS detectedAt, r.ipAddress AS ipAddress,
       r.location AS location, r.isVerified AS isVerified, r.additionalInfo AS additionalInfo`

func (s *Neo4jStore) Insert(ctx context.Context, rec *domain.FraudRecord) error {
	query := `MERGE (r:FraudRecord {transactionId: $transactionId})
ON CREATE SET r.id = $id, r.userId = $userId, r.amount = $amount,
              r.currency = $currency, r.merchantName = $merchantName,
              r.fraudType = $fraudType, r.description = $description,
              r.riskLevel = $riskLevel, r.createdAt = $createdAt,
              r.detectedAt = $detectedAt, r.ipAddress = $ipAddress,
              r.location = $location, r.isVerified = $isVerified,
              r.additionalInfo = $additionalInfo
RETURN r.id AS id`

	params := map[string]any{
		"id":             rec.ID,
		"userId":         rec.UserID,
		"transactionId":  rec.TransactionID,
		"amount":         rec.Amount,
		"currency":       rec.Currency,
		"merchantName":   rec.MerchantName,
		"fraudType":      rec.FraudType,
		"description":    rec.Description,
		"riskLevel":      string(rec.RiskLevel),
		"createdAt":      rec.CreatedAt,
		"detectedAt":     rec.DetectedAt,
		"ipAddress":      rec.IPAddress,
		"location":       rec.Location,
		"isVerified":     rec.IsVerified,
		"additionalInfo": rec.AdditionalInfo,
	}

	rows, err := s.executeWrite(ctx, query, params)
	if err != nil {
		return fmt.Errorf("insert fraud record: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("insert fraud record: no row returned")
	}
	if storedID, _ := rows[0]["id"].(string); storedID != rec.ID {
		// MERGE matched an existing node, so another record owns this
		// transaction ID.
		return ErrDuplicateTransaction
	}
	return nil
}

func (s *Neo4jStore) FindByID(ctx context.Context, id string) (*domain.FraudRecord, error) {
	return s.findOne(ctx, `MATCH (r:FraudRecord {id: $value}) `+fraudRecordReturn, id)
}

func (s *Neo4jStore) FindByTransactionID(ctx context.Context, transactionID string) (*domain.FraudRecord, error) {
	return s.findOne(ctx, `MATCH (r:FraudRecord {transactionId: $value}) `+fraudRecordReturn, transactionID)
}

func (s *Neo4jStore) FindByUser(ctx context.Context, userID string) ([]*domain.FraudRecord, error) {
	query := `MATCH (r:FraudRecord {userId: $value}) ` + fraudRecordReturn + ` ORDER BY r.createdAt DESC`
	return s.findMany(ctx, query, map[string]any{"value": userID})
}

func (s *Neo4jStore) FindByRiskLevel(ctx context.Context, level domain.RiskLevel) ([]*domain.FraudRecord, error) {
	query := `MATCH (r:FraudRecord {riskLevel: $value}) ` + fraudRecordReturn + ` ORDER BY r.createdAt DESC`
	return s.findMany(ctx, query, map[string]any{"value": string(level)})
}

func (s *Neo4jStore) FindCreatedSince(ctx context.Context, since time.Time) ([]*domain.FraudRecord, error) {
	query := `MATCH (r:FraudRecord) WHERE r.createdAt >= $since ` + fraudRecordReturn + ` ORDER BY r.createdAt DESC`
	return s.findMany(ctx, query, map[string]any{"since": since})
}

func (s *Neo4jStore) FindHighRiskUnverified(ctx context.Context) ([]*domain.FraudRecord, error) {
	query := `MATCH (r:FraudRecord {riskLevel: 'HIGH', isVerified: false}) ` + fraudRecordReturn + ` ORDER BY r.createdAt DESC`
	return s.findMany(ctx, query, map[string]any{})
}

func (s *Neo4jStore) UpdateVerification(ctx context.Context, id string, verified bool) error {
	query := `MATCH (r:FraudRecord {id: $id}) SET r.isVerified = $verified RETURN r.id AS id`
	rows, err := s.executeWrite(ctx, query, map[string]any{"id": id, "verified": verified})
	if err != nil {
		return fmt.Errorf("update verification: %w", err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Neo4jStore) Count(ctx context.Context) (int64, error) {
	return s.count(ctx, `MATCH (r:FraudRecord) RETURN count(r) AS n`, map[string]any{})
}

func (s *Neo4jStore) CountByRiskLevel(ctx context.Context, level domain.RiskLevel) (int64, error) {
	return s.count(ctx, `MATCH (r:FraudRecord {riskLevel: $value}) RETURN count(r) AS n`,
		map[string]any{"value": string(level)})
}

func (s *Neo4jStore) CountUnverified(ctx context.Context) (int64, error) {
	return s.count(ctx, `MATCH (r:FraudRecord {isVerified: false}) RETURN count(r) AS n`, map[string]any{})
}

func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *Neo4jStore) findOne(ctx context.Context, query, value string) (*domain.FraudRecord, error) {
	rows, err := s.executeRead(ctx, query, map[string]any{"value": value})
	if err != nil {
		return nil, fmt.Errorf("find fraud record: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return recordFromRow(rows[0]), nil
}

func (s *Neo4jStore) findMany(ctx context.Context, query string, params map[string]any) ([]*domain.FraudRecord, error) {
	rows, err := s.executeRead(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("query fraud records: %w", err)
	}
	records := make([]*domain.FraudRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

func (s *Neo4jStore) count(ctx context.Context, query string, params map[string]any) (int64, error) {
	rows, err := s.executeRead(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("count fraud records: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	n, _ := rows[0]["n"].(int64)
	return n, nil
}

func (s *Neo4jStore) executeRead(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return collectRows(ctx, res)
}

func (s *Neo4jStore) executeWrite(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   neo4j.AccessModeWrite,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return collectRows(ctx, res)
}

func collectRows(ctx context.Context, res neo4j.ResultWithContext) ([]map[string]any, error) {
	var rows []map[string]any
	for res.Next(ctx) {
		rec := res.Record()
		row := make(map[string]any, len(rec.Keys))
		for _, key := range rec.Keys {
			value, _ := rec.Get(key)
			row[key] = value
		}
		rows = append(rows, row)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func recordFromRow(row map[string]any) *domain.FraudRecord {
	rec := &domain.FraudRecord{
		ID:             stringValue(row["id"]),
		UserID:         stringValue(row["userId"]),
		TransactionID:  stringValue(row["transactionId"]),
		Currency:       stringValue(row["currency"]),
		MerchantName:   stringValue(row["merchantName"]),
		FraudType:      stringValue(row["fraudType"]),
		Description:    stringValue(row["description"]),
		RiskLevel:      domain.RiskLevel(stringValue(row["riskLevel"])),
		IPAddress:      stringValue(row["ipAddress"]),
		Location:       stringValue(row["location"]),
		AdditionalInfo: stringValue(row["additionalInfo"]),
	}
	if amount, ok := row["amount"].(float64); ok {
		rec.Amount = amount
	}
	if verified, ok := row["isVerified"].(bool); ok {
		rec.IsVerified = verified
	}
	if createdAt, ok := row["createdAt"].(time.Time); ok {
		rec.CreatedAt = createdAt
	}
	if detectedAt, ok := row["detectedAt"].(time.Time); ok {
		rec.DetectedAt = detectedAt
	}
	return rec
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
