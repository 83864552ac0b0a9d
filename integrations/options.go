// ABOUTME: Functional options shared by the adapter factory and constructors
// ABOUTME: Injects HTTP client, logger, timeout and Airtable endpoint overrides
package integrations

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/crmdash/logging"
	"github.com/harperreed/crmdash/transport"
)

const (
	DefaultAirtableBaseURL = "https://api.airtable.com/v0"
	DefaultMaxRecords      = 100
)

type options struct {
	httpClient      *http.Client
	logger          *zap.Logger
	timeout         time.Duration
	airtableBaseURL string
	maxRecords      int
}

// Option customizes adapter construction.
type Option func(*options)

// WithHTTPClient sets the client used for outgoing requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTimeout bounds each request. Zero keeps transport.DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithAirtableBaseURL points the Airtable adapter at another API root.
func WithAirtableBaseURL(u string) Option {
	return func(o *options) { o.airtableBaseURL = u }
}

// WithMaxRecords sets the single-page record limit for Airtable fetches.
func WithMaxRecords(n int) Option {
	return func(o *options) { o.maxRecords = n }
}

func newOptions(opts []Option) options {
	o := options{
		airtableBaseURL: DefaultAirtableBaseURL,
		maxRecords:      DefaultMaxRecords,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxRecords <= 0 {
		o.maxRecords = DefaultMaxRecords
	}
	if o.airtableBaseURL == "" {
		o.airtableBaseURL = DefaultAirtableBaseURL
	}
	o.logger = logging.OrNop(o.logger)
	return o
}

func (o options) newClient(platform string, client *http.Client) *transport.Client {
	if client == nil {
		client = o.httpClient
	}
	return transport.New(transport.Config{
		Platform:   platform,
		HTTPClient: client,
		Timeout:    o.timeout,
		Logger:     o.logger,
	})
}
