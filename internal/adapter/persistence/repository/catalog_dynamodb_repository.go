package repository

import (
	"context"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultShirtSizesTableName     = "shirt_sizes"
	defaultShirtTypesTableName     = "shirt_types"
	defaultPrintTypesTableName     = "print_types"
	defaultPrintPricesTableName    = "print_prices"
	defaultDesignerPricesTableName = "designer_prices"
	defaultTextilesTableName       = "textiles"
)

type printPriceItem struct {
	ID            string  `dynamodbav:"id"`
	PrintTypeName string  `dynamodbav:"print_type_name"`
	SizeLabel     string  `dynamodbav:"size_label"`
	ShirtTypeName string  `dynamodbav:"shirt_type_name"`
	Amount        float64 `dynamodbav:"amount"`
}

type designerPriceItem struct {
	ID           string  `dynamodbav:"id"`
	DesignerID   string  `dynamodbav:"designer_id"`
	NormalAmount float64 `dynamodbav:"normal_amount"`
	RevisionFee  float64 `dynamodbav:"revision_fee"`
}

type shirtSizeItem struct {
	ID    string `dynamodbav:"id"`
	Label string `dynamodbav:"label"`
}

type namedCatalogItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type textileItem struct {
	ID         string  `dynamodbav:"id"`
	Name       string  `dynamodbav:"name"`
	StockYards float64 `dynamodbav:"stock_yards"`
}

// CatalogDynamoRepository reads the reference tables backing the pricing
// engine. All tables are small seed data keyed by id; Snapshot loads the
// pricing tables in full so the engine works on one consistent view.

type CatalogDynamoRepository struct {
	ddb                 *dynamodb.Client
	shirtSizesTable     string
	shirtTypesTable     string
	printTypesTable     string
	printPricesTable    string
	designerPricesTable string
	textilesTable       string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:                 ddb,
		shirtSizesTable:     getenvDefault("SHIRT_SIZES_TABLE", defaultShirtSizesTableName),
		shirtTypesTable:     getenvDefault("SHIRT_TYPES_TABLE", defaultShirtTypesTableName),
		printTypesTable:     getenvDefault("PRINT_TYPES_TABLE", defaultPrintTypesTableName),
		printPricesTable:    getenvDefault("PRINT_PRICES_TABLE", defaultPrintPricesTableName),
		designerPricesTable: getenvDefault("DESIGNER_PRICES_TABLE", defaultDesignerPricesTableName),
		textilesTable:       getenvDefault("TEXTILES_TABLE", defaultTextilesTableName),
	}
}

func (r *CatalogDynamoRepository) Snapshot(ctx context.Context) (entities.CatalogSnapshot, error) {
	var snapshot entities.CatalogSnapshot

	printItems, err := r.scan(ctx, r.printPricesTable)
	if err != nil {
		return entities.CatalogSnapshot{}, err
	}
	for _, item := range printItems {
		var it printPriceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return entities.CatalogSnapshot{}, err
		}
		snapshot.PrintPrices = append(snapshot.PrintPrices, entities.PrintPrice{
			ID:            it.ID,
			PrintTypeName: it.PrintTypeName,
			SizeLabel:     it.SizeLabel,
			ShirtTypeName: it.ShirtTypeName,
			Amount:        it.Amount,
		})
	}

	designerItems, err := r.scan(ctx, r.designerPricesTable)
	if err != nil {
		return entities.CatalogSnapshot{}, err
	}
	for _, item := range designerItems {
		var it designerPriceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return entities.CatalogSnapshot{}, err
		}
		snapshot.DesignerPrices = append(snapshot.DesignerPrices, entities.DesignerPrice{
			ID:           it.ID,
			DesignerID:   it.DesignerID,
			NormalAmount: it.NormalAmount,
			RevisionFee:  it.RevisionFee,
		})
	}

	return snapshot, nil
}

func (r *CatalogDynamoRepository) GetTextile(ctx context.Context, id string) (entities.Textile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.textilesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Textile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Textile{}, nil
	}

	var it textileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Textile{}, err
	}
	return entities.Textile{ID: it.ID, Name: it.Name, StockYards: it.StockYards}, nil
}

func (r *CatalogDynamoRepository) ListShirtSizes(ctx context.Context) ([]entities.ShirtSize, error) {
	items, err := r.scan(ctx, r.shirtSizesTable)
	if err != nil {
		return nil, err
	}
	sizes := make([]entities.ShirtSize, 0, len(items))
	for _, item := range items {
		var it shirtSizeItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		sizes = append(sizes, entities.ShirtSize{ID: it.ID, Label: it.Label})
	}
	return sizes, nil
}

func (r *CatalogDynamoRepository) ListShirtTypes(ctx context.Context) ([]entities.ShirtType, error) {
	items, err := r.scan(ctx, r.shirtTypesTable)
	if err != nil {
		return nil, err
	}
	shirtTypes := make([]entities.ShirtType, 0, len(items))
	for _, item := range items {
		var it namedCatalogItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		shirtTypes = append(shirtTypes, entities.ShirtType{ID: it.ID, Name: it.Name})
	}
	return shirtTypes, nil
}

func (r *CatalogDynamoRepository) ListPrintTypes(ctx context.Context) ([]entities.PrintType, error) {
	items, err := r.scan(ctx, r.printTypesTable)
	if err != nil {
		return nil, err
	}
	printTypes := make([]entities.PrintType, 0, len(items))
	for _, item := range items {
		var it namedCatalogItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		printTypes = append(printTypes, entities.PrintType{ID: it.ID, Name: it.Name})
	}
	return printTypes, nil
}

func (r *CatalogDynamoRepository) scan(ctx context.Context, table string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
