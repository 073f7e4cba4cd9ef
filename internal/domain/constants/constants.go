// Package constants holds cross-cutting configuration values.
package constants

// Environment names used in configuration.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// OrderNumberPrefix is the leading segment of every public order number.
const OrderNumberPrefix = "LRN"
