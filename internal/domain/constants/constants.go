// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes through a local HTTP push endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// EventTypeNewListing is the Pub/Sub event_type attribute of incoming listings.
	EventTypeNewListing = "new_listing"
	// EventTypeListingAlert is the event_type attribute of published match events.
	EventTypeListingAlert = "baxus_listing_alert"

	// AssetURLPrefix is joined with an asset id to link a listing on the marketplace.
	AssetURLPrefix = "https://baxus.co/asset/"
)
