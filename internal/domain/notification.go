package domain

// Notification is a delivered (or pending) message for one user.
// Attribute names are camelCase because scan filter expressions reference
// them verbatim.
type Notification struct {
	NotificationID string `json:"notificationId" dynamodbav:"notificationId"`
	UserID         string `json:"userId" dynamodbav:"userId"`
	TypeID         string `json:"typeId" dynamodbav:"typeId"`
	Content        string `json:"content" dynamodbav:"content"`
	ContactMethod  string `json:"contactMethod" dynamodbav:"contactMethod"`
	CreatedAt      string `json:"createdAt" dynamodbav:"createdAt"` // RFC3339
}

// CreateNotificationRequest carries the POST /notifications body.
// Optional fields default server-side: typeId "defaultType", contactMethod
// "unknown", createdAt now.
type CreateNotificationRequest struct {
	NotificationID string `json:"notificationId" validate:"required"`
	UserID         string `json:"userId" validate:"required"`
	TypeID         string `json:"typeId"`
	Content        string `json:"content" validate:"required"`
	ContactMethod  string `json:"contactMethod"`
	CreatedAt      string `json:"createdAt"`
}

// NotificationType has no schema beyond its key; callers may attach
// arbitrary fields, so it is stored and returned as a raw attribute map.
type NotificationType map[string]interface{}

// TypeID returns the key attribute, or "" when absent.
func (t NotificationType) TypeID() string {
	id, _ := t["typeId"].(string)
	return id
}

// NotificationFilter is an AND-conjunction of equality filters for
// notification scans. Nil fields are not applied.
type NotificationFilter struct {
	UserID *string
	TypeID *string
}

// Empty reports whether no filter field is set.
func (f NotificationFilter) Empty() bool {
	return f.UserID == nil && f.TypeID == nil
}
