package platform

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/foliokit/folio/pkg/adapters/fs"
	"github.com/foliokit/folio/pkg/core"
	"github.com/foliokit/folio/pkg/datefmt"
)

// New wires a content Service rooted at the given site directory.
//
// Resolution order for each setting: explicit functional option, then
// folio.yaml in the root, then package defaults. The content directory
// itself defaults to {root}/content.
func New(root string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := LoadConfig(filepath.Join(root, ConfigFile))
	if err != nil {
		return nil, err
	}
	cfg.merge(o)

	if o.logger == nil {
		o.logger = slog.Default()
	}

	src := o.source
	if src == nil {
		contentDir := cfg.ContentDir
		if contentDir == "" {
			contentDir = "content"
		}
		if !filepath.IsAbs(contentDir) {
			contentDir = filepath.Join(root, contentDir)
		}

		src = fs.NewSource(fs.Config{
			Dir:     contentDir,
			Pattern: o.pattern,
			Logger:  o.logger,
		})
	}

	svc := core.NewService(src, core.ServiceConfig{
		TTL:    o.ttl,
		Clock:  o.clock,
		Logger: o.logger,
	})

	if o.watch {
		// Process-lifetime subscription, matching the cache lifecycle.
		if err := svc.AutoInvalidate(context.Background()); err != nil {
			o.logger.Warn("watch requested but unavailable", "error", err)
		}
	}

	return svc, nil
}

// NewFormatter wires a date Formatter honoring the same options as New
// (clock, logger, date TTL).
func NewFormatter(opts ...Option) *datefmt.Formatter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var fopts []datefmt.Option
	if o.clock != nil {
		fopts = append(fopts, datefmt.WithClock(o.clock))
	}
	if o.dateTTL != 0 {
		fopts = append(fopts, datefmt.WithTTL(o.dateTTL))
	}
	if o.logger != nil {
		fopts = append(fopts, datefmt.WithLogger(o.logger))
	}
	return datefmt.New(fopts...)
}
