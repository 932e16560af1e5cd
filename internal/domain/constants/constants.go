// Package constants holds domain-wide constant values.
package constants

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pagination and search bounds shared by every paginated listing.
const (
	// DefaultPage is the first page of any listing.
	DefaultPage = 1
	// DefaultLimit is the page size used when the caller does not pick one.
	DefaultLimit = 10
	// DefaultLimitWide is the page size for location listings.
	DefaultLimitWide = 20
	// MaxLimit caps the page size; larger requests are clamped.
	MaxLimit = 100
	// DefaultRadiusKm is the proximity radius used when the caller does not pick one.
	DefaultRadiusKm = 10.0
	// DefaultGoodsSort is the default sort column for goods listings.
	DefaultGoodsSort = "created_at"
	// DefaultSortOrder is the default sort direction.
	DefaultSortOrder = "desc"
)
