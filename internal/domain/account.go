package domain

// Account records share one id space with preference records; the dataType
// sort key is the only sub-typing discriminator.
const (
	DataTypeUser        = "user"
	DataTypePreferences = "preferences"
)

// Account is a stored user record, keyed by (id, dataType="user").
// JobPosition presence is what classifies an account as an employee; there
// is no stored employee flag.
type Account struct {
	ID          string  `json:"id" dynamodbav:"id"`
	DataType    string  `json:"dataType" dynamodbav:"dataType"`
	Name        string  `json:"name" dynamodbav:"name"`
	Email       string  `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Password    string  `json:"password,omitempty" dynamodbav:"password,omitempty"`
	Active      bool    `json:"active" dynamodbav:"active"`
	LastActive  string  `json:"lastActive,omitempty" dynamodbav:"lastActive,omitempty"` // RFC3339
	JobPosition *string `json:"job_position,omitempty" dynamodbav:"job_position,omitempty"`
}

// Preferences is a stored preference record, keyed by (id, dataType="preferences").
// The preference payload has no schema and is kept as a raw map under Item.
type Preferences struct {
	ID       string                 `json:"id" dynamodbav:"id"`
	DataType string                 `json:"dataType" dynamodbav:"dataType"`
	Item     map[string]interface{} `json:"Item" dynamodbav:"Item"`
}

// CreateAccountRequest carries the POST /accounts body (also used by the
// add_employee alias route — an employee is just an account with a
// job_position).
type CreateAccountRequest struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	JobPosition *string `json:"job_position"`
}

// LoginRequest carries the PATCH /account/login/* body. ID "guest" skips
// the store lookup entirely.
type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account type filter values for GET /accounts.
const (
	AccountTypeEmployee = "employee"
	AccountTypeCustomer = "customer"
)

// AccountFilter narrows account scans. Active is an equality filter;
// Type selects on presence/absence of job_position.
type AccountFilter struct {
	Active *bool
	Type   string // "", "employee" or "customer"
}
