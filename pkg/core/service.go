package core

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/foliokit/folio/pkg/cache"
)

// allKey is the single key under which the full record list is cached.
const allKey = "__all__"

// DefaultTTL is the freshness window for cached content when no TTL is
// configured.
const DefaultTTL = 5 * time.Minute

// ServiceConfig holds the configuration for a Service.
type ServiceConfig struct {
	// TTL is the freshness window for both the record-list cache and the
	// by-slug cache. Zero means DefaultTTL.
	TTL time.Duration

	// Clock overrides the time source for cache expiry. Nil means time.Now.
	Clock func() time.Time

	Logger *slog.Logger
}

// Service exposes cache-aside access to a content Source.
//
// Each Service owns its cache instances; construct a fresh Service per
// test instead of clearing shared state between runs.
type Service struct {
	src    Source
	all    *cache.Cache[[]Record]
	bySlug *cache.Cache[*Record]
	logger *slog.Logger
}

// NewService creates a Service over the given source.
func NewService(src Source, cfg ServiceConfig) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	var opts []cache.Option
	if cfg.Clock != nil {
		opts = append(opts, cache.WithClock(cfg.Clock))
	}

	return &Service{
		src:    src,
		all:    cache.New[[]Record](cfg.TTL, opts...),
		bySlug: cache.New[*Record](cfg.TTL, opts...),
		logger: cfg.Logger,
	}
}

// GetAll returns every loadable record, serving from cache within the
// TTL window. An empty result is cached like any other so that an empty
// content directory does not trigger a disk scan per call.
func (s *Service) GetAll(ctx context.Context) ([]Record, error) {
	return s.all.GetOrLoad(allKey, func() ([]Record, error) {
		s.logger.Debug("content cache miss, loading from source")
		return s.src.List(ctx)
	})
}

// GetBySlug returns the record with the given slug, or ErrNotFound.
// Lookups scan the GetAll result; absence is cached too, so repeated
// requests for a missing slug stay cheap.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Record, error) {
	rec, err := s.bySlug.GetOrLoad(slug, func() (*Record, error) {
		records, err := s.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for i := range records {
			if records[i].Slug == slug {
				found := records[i]
				return &found, nil
			}
		}
		return nil, nil
	})
	if err != nil {
		return Record{}, err
	}
	if rec == nil {
		return Record{}, ErrNotFound
	}
	return *rec, nil
}

// InvalidateAll clears both the record-list cache and the by-slug cache.
func (s *Service) InvalidateAll() {
	s.all.Clear()
	s.bySlug.Clear()
	s.logger.Debug("content caches invalidated")
}

// InvalidateOne removes the cache entry for a single slug. The
// record-list cache is cleared as well, since the aggregate view may be
// stale for the same reason the slug is.
func (s *Service) InvalidateOne(slug string) {
	s.bySlug.Delete(slug)
	s.all.Clear()
	s.logger.Debug("content cache invalidated", "slug", slug)
}

// AutoInvalidate subscribes to the source's change events, if supported,
// and invalidates caches as content files change on disk. The
// subscription lives until ctx is done.
func (s *Service) AutoInvalidate(ctx context.Context) error {
	w, ok := s.src.(Watchable)
	if !ok {
		return errors.New("source does not support watching")
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-events:
				if !ok {
					return
				}
				switch e.Type {
				case EventModify:
					s.InvalidateOne(e.Slug)
				default:
					// Creations and deletions change the record set
					// itself, not just one entry.
					s.InvalidateAll()
				}
			}
		}
	}()

	return nil
}
