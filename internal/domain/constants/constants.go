// Package constants holds shared environment and provider names.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events over HTTP to a local endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
