// Package datefmt renders publication dates for display.
//
// Formatting is best-effort by contract: an unparseable date is logged
// and echoed back unchanged, never surfaced as an error, because a
// rendering path must not fail over a cosmetic concern.
package datefmt

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/foliokit/folio/pkg/cache"
	"github.com/foliokit/folio/pkg/core"
)

// DefaultTTL is the freshness window for formatted strings. It is kept
// short relative to day granularity so a cached "Today" does not survive
// long past midnight.
const DefaultTTL = 5 * time.Minute

// absoluteLayout renders the long month name, numeric day and year,
// e.g. "January 1, 2023".
const absoluteLayout = "January 2, 2006"

// Formatter converts date strings into display strings, caching results
// keyed by (input, relative flag).
type Formatter struct {
	now    func() time.Time
	ttl    time.Duration
	cache  *cache.Cache[string]
	logger *slog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock overrides the time source used for the relative suffix and
// for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		f.now = now
	}
}

// WithTTL overrides how long formatted strings stay cached.
func WithTTL(ttl time.Duration) Option {
	return func(f *Formatter) {
		f.ttl = ttl
	}
}

// WithLogger sets the logger for parse failures.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		now:    time.Now,
		ttl:    DefaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.cache = cache.New[string](f.ttl, cache.WithClock(f.now))
	return f
}

// Format renders dateText for display. With withRelative set, a relative
// suffix is appended, e.g. "January 1, 2023 (14d ago)".
//
// The relative rule works by calendar-field subtraction, not elapsed
// duration: differing years win over differing months over differing
// days, and same day-of-month reports "Today". Near month and year
// boundaries this yields field-wise rather than elapsed results; that is
// the documented behavior, kept as-is.
func (f *Formatter) Format(dateText string, withRelative bool) string {
	key := dateText + "|" + strconv.FormatBool(withRelative)
	out, _ := f.cache.GetOrLoad(key, func() (string, error) {
		return f.render(dateText, withRelative), nil
	})
	return out
}

func (f *Formatter) render(dateText string, withRelative bool) string {
	target, err := core.ParseDate(dateText)
	if err != nil {
		f.logger.Warn("failed to parse date for display", "value", dateText, "error", err)
		return dateText
	}

	absolute := target.Format(absoluteLayout)
	if !withRelative {
		return absolute
	}
	return absolute + " (" + f.relative(target) + ")"
}

func (f *Formatter) relative(target time.Time) string {
	now := f.now()
	switch {
	case now.Year() != target.Year():
		return fmt.Sprintf("%dy ago", now.Year()-target.Year())
	case now.Month() != target.Month():
		return fmt.Sprintf("%dmo ago", int(now.Month())-int(target.Month()))
	case now.Day() != target.Day():
		return fmt.Sprintf("%dd ago", now.Day()-target.Day())
	default:
		return "Today"
	}
}
