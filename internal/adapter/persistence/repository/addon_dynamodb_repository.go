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
	defaultAddOnsTableName = "addon_requests"
	addOnsDesignIDIndex    = "design_id-index"
)

type addOnSizeItem struct {
	SizeID   string `dynamodbav:"size_id"`
	Label    string `dynamodbav:"label"`
	Quantity int    `dynamodbav:"quantity"`
}

type addOnItem struct {
	ID            string          `dynamodbav:"id"`
	DesignID      string          `dynamodbav:"design_id"`
	RequesterID   string          `dynamodbav:"requester_id"`
	RequesterRole string          `dynamodbav:"requester_role"`
	Type          string          `dynamodbav:"type"`
	Reason        string          `dynamodbav:"reason"`
	Fee           float64         `dynamodbav:"fee"`
	Price         float64         `dynamodbav:"price"`
	Status        string          `dynamodbav:"status"`
	Sizes         []addOnSizeItem `dynamodbav:"sizes,omitempty"`
	ImageHandles  []string        `dynamodbav:"image_handles,omitempty"`
	DeclineReason string          `dynamodbav:"decline_reason,omitempty"`
	CreatedAt     string          `dynamodbav:"created_at"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
}

// AddOnDynamoRepository persists AddOnRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: design_id-index (PK: design_id)
//
// Size-delta rows and image handles are embedded list attributes.

type AddOnDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAddOnRepository = (*AddOnDynamoRepository)(nil)

func NewAddOnDynamoRepository(ddb *dynamodb.Client) *AddOnDynamoRepository {
	return &AddOnDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADDON_REQUESTS_TABLE", defaultAddOnsTableName),
	}
}

func (r *AddOnDynamoRepository) Create(ctx context.Context, a entities.AddOnRequest) (entities.AddOnRequest, error) {
	av, err := attributevalue.MarshalMap(toAddOnItem(a))
	if err != nil {
		return entities.AddOnRequest{}, err
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
		return entities.AddOnRequest{}, err
	}
	return a, nil
}

func (r *AddOnDynamoRepository) GetByID(ctx context.Context, id string) (entities.AddOnRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AddOnRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.AddOnRequest{}, nil
	}

	var it addOnItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AddOnRequest{}, err
	}
	return fromAddOnItem(it), nil
}

func (r *AddOnDynamoRepository) ListByDesignID(ctx context.Context, designID string) ([]entities.AddOnRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(addOnsDesignIDIndex),
		KeyConditionExpression: aws.String("#design_id = :design_id"),
		ExpressionAttributeNames: map[string]string{
			"#design_id": "design_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":design_id": &types.AttributeValueMemberS{Value: designID},
		},
	})
	if err != nil {
		return nil, err
	}

	addons := make([]entities.AddOnRequest, 0, len(out.Items))
	for _, item := range out.Items {
		var it addOnItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		addons = append(addons, fromAddOnItem(it))
	}
	return addons, nil
}

func (r *AddOnDynamoRepository) UpdateDecision(ctx context.Context, id string, status entities.AddOnStatus, fee, price float64, declineReason string) (entities.AddOnRequest, error) {
	// Decisions only land on a pending record; terminal states never mutate
	// again, even under racing admin actions.
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression: aws.String("SET #status = :status, #fee = :fee, #price = :price, " +
			"#decline_reason = :decline_reason, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":        &types.AttributeValueMemberS{Value: string(entities.AddOnStatusPending)},
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":fee":            &types.AttributeValueMemberN{Value: floatToString(fee)},
			":price":          &types.AttributeValueMemberN{Value: floatToString(price)},
			":decline_reason": &types.AttributeValueMemberS{Value: declineReason},
			":updated_at":     &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#fee":            "fee",
			"#price":          "price",
			"#decline_reason": "decline_reason",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AddOnRequest{}, interfaces.ErrConflict
		}
		return entities.AddOnRequest{}, err
	}

	var it addOnItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AddOnRequest{}, err
	}
	return fromAddOnItem(it), nil
}

func toAddOnItem(a entities.AddOnRequest) addOnItem {
	sizes := make([]addOnSizeItem, 0, len(a.Sizes))
	for _, s := range a.Sizes {
		sizes = append(sizes, addOnSizeItem{SizeID: s.SizeID, Label: s.Label, Quantity: s.Quantity})
	}
	return addOnItem{
		ID:            a.ID,
		DesignID:      a.DesignID,
		RequesterID:   a.RequesterID,
		RequesterRole: string(a.RequesterRole),
		Type:          string(a.Type),
		Reason:        a.Reason,
		Fee:           a.Fee,
		Price:         a.Price,
		Status:        string(a.Status),
		Sizes:         sizes,
		ImageHandles:  a.ImageHandles,
		DeclineReason: a.DeclineReason,
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	}
}

func fromAddOnItem(it addOnItem) entities.AddOnRequest {
	sizes := make([]entities.AddOnSize, 0, len(it.Sizes))
	for _, s := range it.Sizes {
		sizes = append(sizes, entities.AddOnSize{SizeID: s.SizeID, Label: s.Label, Quantity: s.Quantity})
	}
	return entities.AddOnRequest{
		ID:            it.ID,
		DesignID:      it.DesignID,
		RequesterID:   it.RequesterID,
		RequesterRole: entities.UserRole(it.RequesterRole),
		Type:          entities.AddOnType(it.Type),
		Reason:        it.Reason,
		Fee:           it.Fee,
		Price:         it.Price,
		Status:        entities.AddOnStatus(it.Status),
		Sizes:         sizes,
		ImageHandles:  it.ImageHandles,
		DeclineReason: it.DeclineReason,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
