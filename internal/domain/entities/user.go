package entities

// UserRole groups users by what they may do to an order.

type UserRole string

const (
	RoleClient   UserRole = "client"
	RoleDesigner UserRole = "designer"
	RoleAdmin    UserRole = "admin"
)

// User is a read-only directory record. Identity provisioning lives outside
// this service; the core only needs roles for fan-out and ownership checks.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI role-index: role
type User struct {
	ID    string   `json:"id"`
	Role  UserRole `json:"role"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
}
