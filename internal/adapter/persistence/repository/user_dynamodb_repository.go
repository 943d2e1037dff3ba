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
	defaultUsersTableName = "users"
	usersRoleIndex        = "role-index"
)

type userItem struct {
	ID    string `dynamodbav:"id"`
	Role  string `dynamodbav:"role"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
}

// UserDynamoRepository is the read-only user directory backed by DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: role-index (PK: role)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserDirectory = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	var users []entities.User
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(usersRoleIndex),
			KeyConditionExpression: aws.String("#role = :role"),
			ExpressionAttributeNames: map[string]string{
				"#role": "role",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":role": &types.AttributeValueMemberS{Value: string(role)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it userItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			users = append(users, entities.User{
				ID:    it.ID,
				Role:  entities.UserRole(it.Role),
				Name:  it.Name,
				Email: it.Email,
			})
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return users, nil
}
