package repository

import (
	"context"
	"errors"
	"sort"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDesignsTableName  = "designs"
	defaultCanvasesTableName = "canvases"
	defaultPreviewsTableName = "previews"
	defaultCommentsTableName = "design_comments"

	designsRequestIDIndex  = "request_id-index"
	designsClientIDIndex   = "client_id-index"
	designsDesignerIDIndex = "designer_id-index"
	artifactDesignIDIndex  = "design_id-index"
)

type designItem struct {
	ID            string `dynamodbav:"id"`
	RequestID     string `dynamodbav:"request_id"`
	ClientID      string `dynamodbav:"client_id"`
	DesignerID    string `dynamodbav:"designer_id"`
	RevisionCount int    `dynamodbav:"revision_count"`
	Status        string `dynamodbav:"status"`
	Deadline      string `dynamodbav:"deadline,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type canvasItem struct {
	ID        string `dynamodbav:"id"`
	DesignID  string `dynamodbav:"design_id"`
	Objects   string `dynamodbav:"objects"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type previewItem struct {
	ID          string `dynamodbav:"id"`
	DesignID    string `dynamodbav:"design_id"`
	DesignerID  string `dynamodbav:"designer_id"`
	ImageHandle string `dynamodbav:"image_handle"`
	Note        string `dynamodbav:"note,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type commentItem struct {
	ID         string `dynamodbav:"id"`
	DesignID   string `dynamodbav:"design_id"`
	AuthorID   string `dynamodbav:"author_id"`
	AuthorRole string `dynamodbav:"author_role"`
	Body       string `dynamodbav:"body"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// DesignDynamoRepository persists Design entities and their artifacts
// (canvas, previews, comments) in DynamoDB.
//
// Table requirements:
//   - designs: PK id; GSIs request_id-index, client_id-index, designer_id-index
//   - canvases: PK design_id (1:1 with designs)
//   - previews, design_comments: PK id; GSI design_id-index
//
// Design and canvas creation ride a TransactWriteItems call so a design
// never exists without its canvas record.

type DesignDynamoRepository struct {
	ddb           *dynamodb.Client
	designsTable  string
	canvasesTable string
	previewsTable string
	commentsTable string
	requestsTable string
}

var _ interfaces.IDesignRepository = (*DesignDynamoRepository)(nil)

func NewDesignDynamoRepository(ddb *dynamodb.Client) *DesignDynamoRepository {
	return &DesignDynamoRepository{
		ddb:           ddb,
		designsTable:  getenvDefault("DESIGNS_TABLE", defaultDesignsTableName),
		canvasesTable: getenvDefault("CANVASES_TABLE", defaultCanvasesTableName),
		previewsTable: getenvDefault("PREVIEWS_TABLE", defaultPreviewsTableName),
		commentsTable: getenvDefault("DESIGN_COMMENTS_TABLE", defaultCommentsTableName),
		requestsTable: getenvDefault("DESIGN_REQUESTS_TABLE", defaultRequestsTableName),
	}
}

// CreateWithCanvas writes the design, its empty canvas, and the request
// status flip (pending -> approved, designer bound) in one transaction. The
// request condition loses when the request was declined or cancelled between
// the caller's read and the write.
func (r *DesignDynamoRepository) CreateWithCanvas(ctx context.Context, d entities.Design, c entities.Canvas) (entities.Design, error) {
	designAV, err := attributevalue.MarshalMap(toDesignItem(d))
	if err != nil {
		return entities.Design{}, err
	}
	canvasAV, err := attributevalue.MarshalMap(canvasItem{
		ID:        c.ID,
		DesignID:  c.DesignID,
		Objects:   c.Objects,
		UpdatedAt: formatTime(c.UpdatedAt),
	})
	if err != nil {
		return entities.Design{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.designsTable),
					Item:                designAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.canvasesTable),
					Item:                canvasAV,
					ConditionExpression: aws.String("attribute_not_exists(design_id)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.requestsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: d.RequestID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					UpdateExpression: aws.String("SET #status = :approved, " +
						"#preferred_designer_id = :designer, #updated_at = :updated_at"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
						":approved":   &types.AttributeValueMemberS{Value: string(entities.RequestStatusApproved)},
						":designer":   &types.AttributeValueMemberS{Value: d.DesignerID},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
					},
					ExpressionAttributeNames: map[string]string{
						"#id":                    "id",
						"#status":                "status",
						"#preferred_designer_id": "preferred_designer_id",
						"#updated_at":            "updated_at",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return entities.Design{}, interfaces.ErrConflict
				}
			}
		}
		return entities.Design{}, err
	}
	return d, nil
}

func (r *DesignDynamoRepository) GetByID(ctx context.Context, id string) (entities.Design, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.designsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Design{}, err
	}
	if len(out.Item) == 0 {
		return entities.Design{}, nil
	}

	var it designItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Design{}, err
	}
	return fromDesignItem(it), nil
}

func (r *DesignDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Design, error) {
	designs, err := r.queryDesigns(ctx, designsRequestIDIndex, "request_id", requestID)
	if err != nil {
		return entities.Design{}, err
	}
	if len(designs) == 0 {
		return entities.Design{}, nil
	}
	return designs[0], nil
}

func (r *DesignDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DesignStatus) (entities.Design, error) {
	return r.update(ctx, id, "SET #status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{"#status": "status"},
	)
}

func (r *DesignDynamoRepository) UpdateRevision(ctx context.Context, id string, revisionCount int, status entities.DesignStatus) (entities.Design, error) {
	// Condition keeps the revision counter monotone even under racing
	// requests: a stale write loses the conditional check.
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.designsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #revision_count < :revision_count"),
		UpdateExpression:    aws.String("SET #revision_count = :revision_count, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":revision_count": &types.AttributeValueMemberN{Value: intToString(revisionCount)},
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":     &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#revision_count": "revision_count",
			"#status":         "status",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Design{}, interfaces.ErrConflict
		}
		return entities.Design{}, err
	}

	var it designItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Design{}, err
	}
	return fromDesignItem(it), nil
}

func (r *DesignDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Design, error) {
	return r.queryDesigns(ctx, designsClientIDIndex, "client_id", clientID)
}

func (r *DesignDynamoRepository) ListByDesignerID(ctx context.Context, designerID string) ([]entities.Design, error) {
	return r.queryDesigns(ctx, designsDesignerIDIndex, "designer_id", designerID)
}

func (r *DesignDynamoRepository) AddPreview(ctx context.Context, p entities.Preview) (entities.Preview, error) {
	av, err := attributevalue.MarshalMap(previewItem{
		ID:          p.ID,
		DesignID:    p.DesignID,
		DesignerID:  p.DesignerID,
		ImageHandle: p.ImageHandle,
		Note:        p.Note,
		CreatedAt:   formatTime(p.CreatedAt),
	})
	if err != nil {
		return entities.Preview{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.previewsTable),
		Item:      av,
	})
	if err != nil {
		return entities.Preview{}, err
	}
	return p, nil
}

func (r *DesignDynamoRepository) ListPreviews(ctx context.Context, designID string) ([]entities.Preview, error) {
	items, err := r.queryArtifacts(ctx, r.previewsTable, designID)
	if err != nil {
		return nil, err
	}

	previews := make([]entities.Preview, 0, len(items))
	for _, item := range items {
		var it previewItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		previews = append(previews, entities.Preview{
			ID:          it.ID,
			DesignID:    it.DesignID,
			DesignerID:  it.DesignerID,
			ImageHandle: it.ImageHandle,
			Note:        it.Note,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	// Newest last; the latest snapshot is the one with the greatest
	// creation timestamp.
	sort.Slice(previews, func(i, j int) bool { return previews[i].CreatedAt.Before(previews[j].CreatedAt) })
	return previews, nil
}

func (r *DesignDynamoRepository) AddComment(ctx context.Context, c entities.DesignComment) (entities.DesignComment, error) {
	av, err := attributevalue.MarshalMap(commentItem{
		ID:         c.ID,
		DesignID:   c.DesignID,
		AuthorID:   c.AuthorID,
		AuthorRole: string(c.AuthorRole),
		Body:       c.Body,
		CreatedAt:  formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.DesignComment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.commentsTable),
		Item:      av,
	})
	if err != nil {
		return entities.DesignComment{}, err
	}
	return c, nil
}

func (r *DesignDynamoRepository) ListComments(ctx context.Context, designID string) ([]entities.DesignComment, error) {
	items, err := r.queryArtifacts(ctx, r.commentsTable, designID)
	if err != nil {
		return nil, err
	}

	comments := make([]entities.DesignComment, 0, len(items))
	for _, item := range items {
		var it commentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		comments = append(comments, entities.DesignComment{
			ID:         it.ID,
			DesignID:   it.DesignID,
			AuthorID:   it.AuthorID,
			AuthorRole: entities.UserRole(it.AuthorRole),
			Body:       it.Body,
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CreatedAt.Before(comments[j].CreatedAt) })
	return comments, nil
}

func (r *DesignDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.Design, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(nowUTC())}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.designsTable),
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
			return entities.Design{}, interfaces.ErrConflict
		}
		return entities.Design{}, err
	}

	var it designItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Design{}, err
	}
	return fromDesignItem(it), nil
}

func (r *DesignDynamoRepository) queryDesigns(ctx context.Context, index, key, value string) ([]entities.Design, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.designsTable),
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

	designs := make([]entities.Design, 0, len(out.Items))
	for _, item := range out.Items {
		var it designItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		designs = append(designs, fromDesignItem(it))
	}
	return designs, nil
}

func (r *DesignDynamoRepository) queryArtifacts(ctx context.Context, table, designID string) ([]map[string]types.AttributeValue, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(artifactDesignIDIndex),
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
	return out.Items, nil
}

func toDesignItem(d entities.Design) designItem {
	return designItem{
		ID:            d.ID,
		RequestID:     d.RequestID,
		ClientID:      d.ClientID,
		DesignerID:    d.DesignerID,
		RevisionCount: d.RevisionCount,
		Status:        string(d.Status),
		Deadline:      formatTimePtr(d.Deadline),
		CreatedAt:     formatTime(d.CreatedAt),
		UpdatedAt:     formatTime(d.UpdatedAt),
	}
}

func fromDesignItem(it designItem) entities.Design {
	return entities.Design{
		ID:            it.ID,
		RequestID:     it.RequestID,
		ClientID:      it.ClientID,
		DesignerID:    it.DesignerID,
		RevisionCount: it.RevisionCount,
		Status:        entities.DesignStatus(it.Status),
		Deadline:      parseTimePtr(it.Deadline),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
