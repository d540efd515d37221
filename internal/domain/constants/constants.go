// Package constants holds names shared between configuration and wiring.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Alarm scheduler providers
const (
	AlarmProviderLog     = "log"
	AlarmProviderCron    = "cron"
	AlarmProviderPubSub  = "pubsub"
	AlarmProviderWebhook = "webhook"
)

// Alarm notifier providers
const (
	NotificationProviderLog      = "log"
	NotificationProviderFirebase = "firebase"
)

// Database drivers
const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"
)
