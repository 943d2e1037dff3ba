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

const defaultBillingsTableName = "billings"

type negotiationEntryItem struct {
	Amount float64 `dynamodbav:"amount"`
	Date   string  `dynamodbav:"date"`
}

type billingItem struct {
	ID                 string                 `dynamodbav:"id"`
	DesignID           string                 `dynamodbav:"design_id"`
	InvoiceNo          string                 `dynamodbav:"invoice_no"`
	StartingAmount     float64                `dynamodbav:"starting_amount"`
	PrintFee           float64                `dynamodbav:"print_fee"`
	DesignerFee        float64                `dynamodbav:"designer_fee"`
	RevisionFee        float64                `dynamodbav:"revision_fee"`
	FinalAmount        float64                `dynamodbav:"final_amount"`
	NegotiationHistory []negotiationEntryItem `dynamodbav:"negotiation_history"`
	NegotiationRounds  int                    `dynamodbav:"negotiation_rounds"`
	AddonsShirtPrice   float64                `dynamodbav:"addons_shirt_price"`
	AddonsFee          float64                `dynamodbav:"addons_fee"`
	Status             string                 `dynamodbav:"status"`
	CreatedAt          string                 `dynamodbav:"created_at"`
	UpdatedAt          string                 `dynamodbav:"updated_at"`
}

// BillingDynamoRepository persists Billing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The billing id equals the design id, so one conditional
// attribute_not_exists write gives "insert if no billing exists for this
// design" without a separate lookup index.

type BillingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingRepository = (*BillingDynamoRepository)(nil)

func NewBillingDynamoRepository(ddb *dynamodb.Client) *BillingDynamoRepository {
	return &BillingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLINGS_TABLE", defaultBillingsTableName),
	}
}

func (r *BillingDynamoRepository) CreateIfAbsent(ctx context.Context, b entities.Billing) (entities.Billing, bool, error) {
	av, err := attributevalue.MarshalMap(toBillingItem(b))
	if err != nil {
		return entities.Billing{}, false, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, gerr := r.GetByDesignID(ctx, b.DesignID)
			if gerr != nil {
				return entities.Billing{}, false, gerr
			}
			return existing, false, nil
		}
		return entities.Billing{}, false, err
	}
	return b, true, nil
}

func (r *BillingDynamoRepository) GetByDesignID(ctx context.Context, designID string) (entities.Billing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: designID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Billing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Billing{}, nil
	}

	var it billingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Billing{}, err
	}
	return fromBillingItem(it), nil
}

func (r *BillingDynamoRepository) AppendNegotiation(ctx context.Context, designID string, entry entities.NegotiationEntry) (entities.Billing, error) {
	entryAV, err := attributevalue.MarshalMap(negotiationEntryItem{
		Amount: entry.Amount,
		Date:   formatTime(entry.Date),
	})
	if err != nil {
		return entities.Billing{}, err
	}

	// The round cap is re-checked at write time so two racing proposals
	// cannot both land once the counter reaches the limit.
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: designID},
		},
		// The ceiling and the pending check ride on the write itself: a
		// raced sixth round or a concurrent approval loses here, not in
		// the caller's stale read.
		ConditionExpression: aws.String("attribute_exists(#id) AND #rounds < :max_rounds AND #status = :pending"),
		UpdateExpression: aws.String("SET #history = list_append(#history, :entry), " +
			"#final_amount = :amount, #rounds = #rounds + :one, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":entry":      &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: entryAV}}},
			":amount":     &types.AttributeValueMemberN{Value: floatToString(entry.Amount)},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":max_rounds": &types.AttributeValueMemberN{Value: intToString(entities.MaxNegotiationRounds)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.BillingStatusPending)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#rounds":       "negotiation_rounds",
			"#status":       "status",
			"#history":      "negotiation_history",
			"#final_amount": "final_amount",
			"#updated_at":   "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Billing{}, interfaces.ErrConflict
		}
		return entities.Billing{}, err
	}

	var it billingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Billing{}, err
	}
	return fromBillingItem(it), nil
}

func (r *BillingDynamoRepository) UpdateStatus(ctx context.Context, designID string, status entities.BillingStatus) (entities.Billing, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: designID},
		},
		// Only a pending invoice may change status; a raced approval
		// surfaces as a conflict instead of a silent double-approve.
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.BillingStatusPending)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Billing{}, interfaces.ErrConflict
		}
		return entities.Billing{}, err
	}

	var it billingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Billing{}, err
	}
	return fromBillingItem(it), nil
}

func (r *BillingDynamoRepository) AddAddOnCharges(ctx context.Context, designID string, shirtPrice, fee float64) (entities.Billing, error) {
	// ADD keeps the surcharge totals monotone: concurrent approvals both
	// land as increments instead of overwriting each other.
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: designID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("ADD #addons_shirt_price :shirt_price, #addons_fee :fee " +
			"SET #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":shirt_price": &types.AttributeValueMemberN{Value: floatToString(shirtPrice)},
			":fee":         &types.AttributeValueMemberN{Value: floatToString(fee)},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                 "id",
			"#addons_shirt_price": "addons_shirt_price",
			"#addons_fee":         "addons_fee",
			"#updated_at":         "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Billing{}, interfaces.ErrConflict
		}
		return entities.Billing{}, err
	}

	var it billingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Billing{}, err
	}
	return fromBillingItem(it), nil
}

func toBillingItem(b entities.Billing) billingItem {
	history := make([]negotiationEntryItem, 0, len(b.NegotiationHistory))
	for _, e := range b.NegotiationHistory {
		history = append(history, negotiationEntryItem{Amount: e.Amount, Date: formatTime(e.Date)})
	}
	return billingItem{
		ID:                 b.ID,
		DesignID:           b.DesignID,
		InvoiceNo:          b.InvoiceNo,
		StartingAmount:     b.StartingAmount,
		PrintFee:           b.PrintFee,
		DesignerFee:        b.DesignerFee,
		RevisionFee:        b.RevisionFee,
		FinalAmount:        b.FinalAmount,
		NegotiationHistory: history,
		NegotiationRounds:  b.NegotiationRounds,
		AddonsShirtPrice:   b.AddonsShirtPrice,
		AddonsFee:          b.AddonsFee,
		Status:             string(b.Status),
		CreatedAt:          formatTime(b.CreatedAt),
		UpdatedAt:          formatTime(b.UpdatedAt),
	}
}

func fromBillingItem(it billingItem) entities.Billing {
	history := make([]entities.NegotiationEntry, 0, len(it.NegotiationHistory))
	for _, e := range it.NegotiationHistory {
		history = append(history, entities.NegotiationEntry{Amount: e.Amount, Date: parseTime(e.Date)})
	}
	return entities.Billing{
		ID:                 it.ID,
		DesignID:           it.DesignID,
		InvoiceNo:          it.InvoiceNo,
		StartingAmount:     it.StartingAmount,
		PrintFee:           it.PrintFee,
		DesignerFee:        it.DesignerFee,
		RevisionFee:        it.RevisionFee,
		FinalAmount:        it.FinalAmount,
		NegotiationHistory: history,
		NegotiationRounds:  it.NegotiationRounds,
		AddonsShirtPrice:   it.AddonsShirtPrice,
		AddonsFee:          it.AddonsFee,
		Status:             entities.BillingStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
