package platform

import (
	"log/slog"
	"time"

	"github.com/foliokit/folio/pkg/core"
)

// options holds the internal configuration for the folio service.
type options struct {
	pattern string
	ttl     time.Duration
	dateTTL time.Duration
	clock   func() time.Time
	logger  *slog.Logger
	source  core.Source
	watch   bool
}

// Option defines a functional option for configuring folio.
type Option func(*options)

// defaultOptions returns the default configuration. Zero values mean
// "unset": the config file, then package defaults, fill them in.
func defaultOptions() *options {
	return &options{}
}

// WithPattern sets the glob matched against content filenames
// (e.g. "*.mdx"). Defaults to the fs adapter's pattern.
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithTTL sets the freshness window for the content caches.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// WithDateTTL sets the freshness window for formatted date strings.
func WithDateTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.dateTTL = ttl
	}
}

// WithClock overrides the time source for cache expiry and relative
// dates. Useful for testing.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource allows injecting a custom content source (e.g. mock,
// embedded assets). If provided, the default filesystem adapter is
// skipped.
func WithSource(src core.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithWatch starts a filesystem watcher that invalidates the content
// caches as files change. The watcher lives for the life of the process.
func WithWatch(watch bool) Option {
	return func(o *options) {
		o.watch = watch
	}
}
