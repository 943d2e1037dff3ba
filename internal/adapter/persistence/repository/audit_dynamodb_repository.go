package repository

import (
	"context"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditLogTableName = "audit_log"

type auditItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	UserRole    string `dynamodbav:"user_role"`
	Action      string `dynamodbav:"action"`
	ActionType  string `dynamodbav:"action_type"`
	RelatedID   string `dynamodbav:"related_id"`
	RelatedType string `dynamodbav:"related_type"`
	Details     string `dynamodbav:"details,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// AuditDynamoRepository appends history records to DynamoDB. Entries are
// write-only from the service's point of view.
//
// Table requirements:
//   - PK: id (string)

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLog = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditLogTableName),
	}
}

func (r *AuditDynamoRepository) Record(ctx context.Context, e entities.AuditEntry) error {
	av, err := attributevalue.MarshalMap(auditItem{
		ID:          e.ID,
		UserID:      e.UserID,
		UserRole:    string(e.UserRole),
		Action:      e.Action,
		ActionType:  e.ActionType,
		RelatedID:   e.RelatedID,
		RelatedType: e.RelatedType,
		Details:     e.Details,
		CreatedAt:   formatTime(e.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
