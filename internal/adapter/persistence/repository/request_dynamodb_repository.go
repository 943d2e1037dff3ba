package repository

import (
	"context"
	"errors"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "design_requests"
	requestsClientIDIndex    = "client_id-index"
	requestsStatusIndex      = "status-index"
)

type requestedSizeItem struct {
	SizeID   string `dynamodbav:"size_id"`
	Label    string `dynamodbav:"label"`
	Quantity int    `dynamodbav:"quantity"`
}

type designRequestItem struct {
	ID                  string              `dynamodbav:"id"`
	ClientID            string              `dynamodbav:"client_id"`
	TextileID           string              `dynamodbav:"textile_id"`
	ShirtTypeName       string              `dynamodbav:"shirt_type_name"`
	Gender              string              `dynamodbav:"gender"`
	PrintType           string              `dynamodbav:"print_type"`
	Sizes               []requestedSizeItem `dynamodbav:"sizes"`
	PreferredDesignerID string              `dynamodbav:"preferred_designer_id,omitempty"`
	PreferredDate       string              `dynamodbav:"preferred_date,omitempty"`
	Status              string              `dynamodbav:"status"`
	CreatedAt           string              `dynamodbav:"created_at"`
	UpdatedAt           string              `dynamodbav:"updated_at"`
}

// DesignRequestDynamoRepository persists DesignRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: status-index (PK: status)
//
// Size rows are embedded as a list attribute; a request and its sizes are
// always written and read as one document.

type DesignRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDesignRequestRepository = (*DesignRequestDynamoRepository)(nil)

func NewDesignRequestDynamoRepository(ddb *dynamodb.Client) *DesignRequestDynamoRepository {
	return &DesignRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DESIGN_REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *DesignRequestDynamoRepository) Create(ctx context.Context, req entities.DesignRequest) (entities.DesignRequest, error) {
	av, err := attributevalue.MarshalMap(toDesignRequestItem(req))
	if err != nil {
		return entities.DesignRequest{}, err
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
		return entities.DesignRequest{}, err
	}
	return req, nil
}

func (r *DesignRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.DesignRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DesignRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.DesignRequest{}, nil
	}

	var it designRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DesignRequest{}, err
	}
	return fromDesignRequestItem(it), nil
}

func (r *DesignRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.DesignRequest, error) {
	return r.update(ctx, id, "SET #status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{"#status": "status"},
	)
}

func (r *DesignRequestDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.DesignRequest, error) {
	return r.query(ctx, requestsClientIDIndex, "client_id", clientID)
}

func (r *DesignRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.DesignRequest, error) {
	return r.query(ctx, requestsStatusIndex, "status", string(status))
}

func (r *DesignRequestDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.DesignRequest, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(nowUTC())}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DesignRequest{}, interfaces.ErrConflict
		}
		return entities.DesignRequest{}, err
	}

	var it designRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DesignRequest{}, err
	}
	return fromDesignRequestItem(it), nil
}

func (r *DesignRequestDynamoRepository) query(ctx context.Context, index, key, value string) ([]entities.DesignRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	reqs := make([]entities.DesignRequest, 0, len(out.Items))
	for _, item := range out.Items {
		var it designRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		reqs = append(reqs, fromDesignRequestItem(it))
	}
	return reqs, nil
}

func toDesignRequestItem(r entities.DesignRequest) designRequestItem {
	sizes := make([]requestedSizeItem, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		sizes = append(sizes, requestedSizeItem{SizeID: s.SizeID, Label: s.Label, Quantity: s.Quantity})
	}
	return designRequestItem{
		ID:                  r.ID,
		ClientID:            r.ClientID,
		TextileID:           r.TextileID,
		ShirtTypeName:       r.ShirtTypeName,
		Gender:              r.Gender,
		PrintType:           r.PrintType,
		Sizes:               sizes,
		PreferredDesignerID: r.PreferredDesignerID,
		PreferredDate:       formatTimePtr(r.PreferredDate),
		Status:              string(r.Status),
		CreatedAt:           formatTime(r.CreatedAt),
		UpdatedAt:           formatTime(r.UpdatedAt),
	}
}

func fromDesignRequestItem(it designRequestItem) entities.DesignRequest {
	sizes := make([]entities.RequestedSize, 0, len(it.Sizes))
	for _, s := range it.Sizes {
		sizes = append(sizes, entities.RequestedSize{SizeID: s.SizeID, Label: s.Label, Quantity: s.Quantity})
	}
	return entities.DesignRequest{
		ID:                  it.ID,
		ClientID:            it.ClientID,
		TextileID:           it.TextileID,
		ShirtTypeName:       it.ShirtTypeName,
		Gender:              it.Gender,
		PrintType:           it.PrintType,
		Sizes:               sizes,
		PreferredDesignerID: it.PreferredDesignerID,
		PreferredDate:       parseTimePtr(it.PreferredDate),
		Status:              entities.RequestStatus(it.Status),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
