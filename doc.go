// Package folio is the Composition Root for the folio content engine.
//
// It connects the core content logic (Domain Layer) with the filesystem
// adapter (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// folio is the non-presentation core of a statically generated portfolio
// site. It treats a directory of Markdown/MDX files with frontmatter as
// a read-only content database, fronted by TTL memory caches so page
// renders do not hit the disk on every call.
//
// Features:
//
//   - **Frontmatter First**: delimited key/value headers parsed into a
//     typed metadata record with an open extension map.
//   - **Partial-Failure Isolation**: one malformed content file never
//     prevents the rest of the directory from loading.
//   - **Cache-Aside Service**: TTL-cached "all records" and "by slug"
//     views with single-flight miss deduplication.
//   - **Live Invalidation**: optional fsnotify watcher that invalidates
//     caches as content files change.
//   - **Extensible**: custom content sources via core.Source.
//
// Usage:
//
//	// Initialize the service with functional options
//	svc, err := folio.New("./site",
//		folio.WithTTL(time.Minute),
//		folio.WithLogger(logger),
//	)
//
//	// List records, most recent first
//	records, err := svc.GetAll(ctx)
//	records = folio.SortByDate(records)
package folio
