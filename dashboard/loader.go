// ABOUTME: Loads each record kind from the active integration with demo fallback
// ABOUTME: Any missing adapter or fetch failure yields demo data plus a warning
package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/crmdash/demo"
	"github.com/harperreed/crmdash/integrations"
	"github.com/harperreed/crmdash/logging"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

// Source says where a result's records came from.
type Source string

const (
	SourceLive Source = "live"
	SourceDemo Source = "demo"
)

// Result is one record list plus its provenance. Err is set when a live
// fetch failed and the records are the demo fallback.
type Result[T any] struct {
	Records []T
	Source  Source
	Err     error
}

// Warning is the banner text for a fallback, empty when there is none.
func (r Result[T]) Warning() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Loader resolves settings to an adapter on every call; nothing is cached.
type Loader struct {
	Build  integrations.BuildFunc
	Logger *zap.Logger
}

// NewLoader returns a loader using build, or the default factory when nil.
func NewLoader(build integrations.BuildFunc, logger *zap.Logger) *Loader {
	return &Loader{Build: build, Logger: logger}
}

func (l *Loader) adapter(s settings.IntegrationSettings) integrations.Adapter {
	build := l.Build
	if build == nil {
		build = integrations.Builder()
	}
	return build(s)
}

func (l *Loader) logger() *zap.Logger {
	return logging.OrNop(l.Logger).Named("dashboard")
}

type fetchFunc[T any] func(integrations.Adapter, context.Context) ([]T, error)

func load[T any](ctx context.Context, l *Loader, a integrations.Adapter, kind string, fetch fetchFunc[T], fallback func() []T) Result[T] {
	if a == nil {
		return Result[T]{Records: fallback(), Source: SourceDemo}
	}

	records, err := fetch(a, ctx)
	if err != nil {
		l.logger().Warn("live fetch failed, showing demo data",
			zap.String("platform", string(a.Platform())),
			zap.String("kind", kind),
			zap.Error(err))
		return Result[T]{Records: fallback(), Source: SourceDemo, Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return Result[T]{Records: records, Source: SourceLive}
}

func (l *Loader) Contacts(ctx context.Context, s settings.IntegrationSettings) Result[models.Contact] {
	return load(ctx, l, l.adapter(s), "contacts", integrations.Adapter.FetchContacts, demo.Contacts)
}

func (l *Loader) Deals(ctx context.Context, s settings.IntegrationSettings) Result[models.Deal] {
	return load(ctx, l, l.adapter(s), "deals", integrations.Adapter.FetchDeals, demo.Deals)
}

func (l *Loader) Activities(ctx context.Context, s settings.IntegrationSettings) Result[models.Activity] {
	return load(ctx, l, l.adapter(s), "activities", integrations.Adapter.FetchActivities, demo.Activities)
}

func (l *Loader) Companies(ctx context.Context, s settings.IntegrationSettings) Result[models.Company] {
	return load(ctx, l, l.adapter(s), "companies", integrations.Adapter.FetchCompanies, demo.Companies)
}

// Snapshot is every record kind loaded at one point in time. Each kind falls
// back to demo data independently.
type Snapshot struct {
	Platform   models.Platform
	LoadedAt   time.Time
	Contacts   Result[models.Contact]
	Deals      Result[models.Deal]
	Activities Result[models.Activity]
	Companies  Result[models.Company]
}

// Warnings lists the distinct fallback messages in kind order.
func (s Snapshot) Warnings() []string {
	var out []string
	seen := map[string]bool{}
	for _, w := range []string{s.Contacts.Warning(), s.Deals.Warning(), s.Activities.Warning(), s.Companies.Warning()} {
		if w != "" && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

// Live reports whether any kind came from the live integration.
func (s Snapshot) Live() bool {
	return s.Contacts.Source == SourceLive || s.Deals.Source == SourceLive ||
		s.Activities.Source == SourceLive || s.Companies.Source == SourceLive
}

// Snapshot fetches the four kinds concurrently with one adapter.
func (l *Loader) Snapshot(ctx context.Context, s settings.IntegrationSettings) Snapshot {
	a := l.adapter(s)
	snap := Snapshot{Platform: s.Platform, LoadedAt: time.Now()}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		snap.Contacts = load(ctx, l, a, "contacts", integrations.Adapter.FetchContacts, demo.Contacts)
	}()
	go func() {
		defer wg.Done()
		snap.Deals = load(ctx, l, a, "deals", integrations.Adapter.FetchDeals, demo.Deals)
	}()
	go func() {
		defer wg.Done()
		snap.Activities = load(ctx, l, a, "activities", integrations.Adapter.FetchActivities, demo.Activities)
	}()
	go func() {
		defer wg.Done()
		snap.Companies = load(ctx, l, a, "companies", integrations.Adapter.FetchCompanies, demo.Companies)
	}()
	wg.Wait()

	return snap
}

// TestConnection checks the active platform. When the factory declines to
// build an adapter the reason is returned as a configuration error.
func (l *Loader) TestConnection(ctx context.Context, s settings.IntegrationSettings) (bool, error) {
	a := l.adapter(s)
	if a == nil {
		return false, declined(s)
	}

	ok, err := a.TestConnection(ctx)
	l.logger().Debug("connection test",
		zap.String("platform", string(s.Platform)),
		zap.Bool("ok", ok),
		zap.Error(err))
	return ok, err
}

func declined(s settings.IntegrationSettings) error {
	switch s.Platform {
	case models.PlatformNone:
		return &integrations.ConfigError{Platform: s.Platform, Field: "platform", Message: "Belum ada platform yang dipilih."}
	case models.PlatformAirtable:
		field := "apiKey"
		if s.Airtable.APIKey != "" {
			field = "baseId"
		}
		return &integrations.ConfigError{Platform: s.Platform, Field: field, Message: "Airtable API Key dan Base ID belum diisi."}
	default:
		return &integrations.ConfigError{Platform: s.Platform, Field: "platform", Message: "Platform tidak dikenal: " + string(s.Platform)}
	}
}
