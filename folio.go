package folio

import (
	_ "embed"
	"log/slog"
	"time"

	"github.com/foliokit/folio/internal/platform"
	"github.com/foliokit/folio/pkg/adapters/fs"
	"github.com/foliokit/folio/pkg/core"
	"github.com/foliokit/folio/pkg/datefmt"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Metadata is a public alias for the content metadata record.
type Metadata = core.Metadata

// Record is a public alias for a loaded content record.
type Record = core.Record

// Service is a public alias for the cache-aside content service.
type Service = core.Service

// Formatter is a public alias for the date display formatter.
type Formatter = datefmt.Formatter

// ErrNotFound signals that no record exists for the requested slug.
var ErrNotFound = core.ErrNotFound

// --- Configuration ---

// Option defines a functional option for configuring folio.
type Option = platform.Option

// WithPattern sets the glob matched against content filenames (e.g. "*.mdx").
func WithPattern(pattern string) Option {
	return platform.WithPattern(pattern)
}

// WithTTL sets the freshness window for the content caches.
func WithTTL(ttl time.Duration) Option {
	return platform.WithTTL(ttl)
}

// WithDateTTL sets the freshness window for formatted date strings.
func WithDateTTL(ttl time.Duration) Option {
	return platform.WithDateTTL(ttl)
}

// WithClock overrides the time source (cache expiry, relative dates).
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource allows injecting a custom content source.
func WithSource(src core.Source) Option {
	return platform.WithSource(src)
}

// WithWatch starts a filesystem watcher that invalidates the content
// caches as files change.
func WithWatch(watch bool) Option {
	return platform.WithWatch(watch)
}

// --- Factory ---

// New creates a content Service rooted at the given site directory.
// Settings resolve as: explicit option, then folio.yaml, then defaults;
// content files live in {root}/content unless configured otherwise.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// NewFormatter creates a date Formatter honoring the same options.
func NewFormatter(opts ...Option) *datefmt.Formatter {
	return platform.NewFormatter(opts...)
}

// --- Utilities ---

// ParseFrontmatter splits raw content text into metadata and body.
func ParseFrontmatter(raw string) (core.Metadata, string, error) {
	return fs.ParseFrontmatter(raw)
}

// SortByDate orders records by publication date descending, stable on ties.
func SortByDate(records []core.Record) []core.Record {
	return core.SortByDate(records)
}

// FindRoot recursively looks upwards for a content root indicator
// (a folio.yaml file or a content directory).
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
