package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppEnv string

	// Per-service listen ports; each binary reads only its own.
	NotificationPort string
	OrderPort        string
	AccountPort      string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	// NotificationIngestURL is the create-notification endpoint the order
	// service POSTs to after a status update.
	NotificationIngestURL string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each collection.
type DynamoTables struct {
	Notifications     string
	NotificationTypes string
	Orders            string
	Accounts          string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),

		NotificationPort: getEnv("NOTIFICATION_PORT", "3000"),
		OrderPort:        getEnv("ORDER_PORT", "3001"),
		AccountPort:      getEnv("ACCOUNT_PORT", "3002"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Notifications:     getEnv("DYNAMO_TABLE_NOTIFICATIONS", "notificationtable"),
			NotificationTypes: getEnv("DYNAMO_TABLE_NOTIFICATION_TYPES", "notificationtypes"),
			Orders:            getEnv("DYNAMO_TABLE_ORDERS", "orderbase"),
			Accounts:          getEnv("DYNAMO_TABLE_ACCOUNTS", "userbase"),
		},

		NotificationIngestURL: getEnv("NOTIFICATION_INGEST_URL", "http://localhost:3000/notifications"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
