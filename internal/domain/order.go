package domain

// OrderItem is one line item of an order.
type OrderItem struct {
	Price    float64 `json:"price" dynamodbav:"price"`
	Quantity int     `json:"quantity" dynamodbav:"quantity"`
}

// Order is a stored order record. TotalPrice is derived at write time:
// sum(price*quantity) over Items, formatted to two decimals.
type Order struct {
	OrderID     string      `json:"orderId" dynamodbav:"orderId"`
	DataType    string      `json:"datatype" dynamodbav:"datatype"`
	AccountID   string      `json:"accountId" dynamodbav:"accountId"`
	Items       []OrderItem `json:"items,omitempty" dynamodbav:"items,omitempty"`
	TotalPrice  string      `json:"totalPrice" dynamodbav:"totalPrice"`
	OrderStatus string      `json:"orderStatus" dynamodbav:"orderStatus"`
	DateCreated string      `json:"dateCreated" dynamodbav:"dateCreated"` // YYYY-MM-DD
	DateUpdated string      `json:"dateUpdated,omitempty" dynamodbav:"dateUpdated,omitempty"`
}

// CreateOrderRequest carries the POST /orders body.
type CreateOrderRequest struct {
	OrderID     string      `json:"orderId" validate:"required"`
	AccountID   string      `json:"accountId" validate:"required"`
	Items       []OrderItem `json:"items"`
	OrderStatus string      `json:"orderStatus"`
}

// UpdateOrderRequest carries the PATCH /orders/{orderId} body. The whole
// record is replaced: the body is merged onto the path key.
type UpdateOrderRequest struct {
	AccountID   string      `json:"accountId"`
	Items       []OrderItem `json:"items"`
	TotalPrice  string      `json:"totalPrice"`
	OrderStatus string      `json:"orderStatus"`
	DateCreated string      `json:"dateCreated"`
}

// UpdateOrderStatusRequest carries the PATCH /orders/{orderId}/status body.
// AccountID identifies the notification recipient.
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" validate:"required"`
	AccountID   string `json:"accountId"`
}

// OrderFilter is an AND-conjunction of equality filters for order scans.
// Nil fields are not applied.
type OrderFilter struct {
	AccountID   *string
	OrderStatus *string
	DateCreated *string
}
