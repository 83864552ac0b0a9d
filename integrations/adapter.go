// ABOUTME: Uniform adapter contract every integration platform satisfies
// ABOUTME: The set of implementations is closed to this package
package integrations

import (
	"context"

	"github.com/harperreed/crmdash/models"
)

// Adapter fetches canonical CRM records from one external platform.
//
// A fetch either returns the full normalized list or an error; partial
// results are never returned. Adapters hold only the configuration they were
// built with and are safe for concurrent use.
type Adapter interface {
	// Platform returns the tag the adapter was built for.
	Platform() models.Platform

	FetchContacts(ctx context.Context) ([]models.Contact, error)
	FetchDeals(ctx context.Context) ([]models.Deal, error)
	FetchActivities(ctx context.Context) ([]models.Activity, error)
	FetchCompanies(ctx context.Context) ([]models.Company, error)

	// TestConnection reports whether the platform is reachable with the
	// configured credentials. Configuration problems are returned as errors.
	TestConnection(ctx context.Context) (bool, error)

	adapter()
}
