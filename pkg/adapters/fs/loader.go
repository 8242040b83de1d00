package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/foliokit/folio/pkg/core"
)

// DefaultPattern matches the standard content file extensions.
const DefaultPattern = "*.{md,mdx}"

// Config holds the configuration for the filesystem source.
type Config struct {
	// Dir is the content directory.
	Dir string

	// Pattern is a doublestar glob matched against filenames.
	// Empty means DefaultPattern.
	Pattern string

	Logger *slog.Logger
}

// Source implements core.Source over a directory of content files.
type Source struct {
	dir     string
	pattern string
	logger  *slog.Logger
}

// NewSource creates a filesystem-backed content source.
func NewSource(cfg Config) *Source {
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Source{
		dir:     cfg.Dir,
		pattern: cfg.Pattern,
		logger:  cfg.Logger,
	}
}

// Dir returns the content directory the source reads from.
func (s *Source) Dir() string { return s.dir }

// ListContentFiles enumerates matching filenames in the content
// directory, in enumeration order. A directory read failure is logged
// and yields an empty list: an empty portfolio is a valid state, so the
// error must not propagate as fatal.
func (s *Source) ListContentFiles() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		dirErr := &core.DirectoryError{Dir: s.dir, Err: err}
		s.logger.Error("failed to enumerate content directory", "error", dirErr)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names
}

func (s *Source) matches(name string) bool {
	ok, err := doublestar.Match(s.pattern, name)
	if err != nil {
		s.logger.Warn("invalid content pattern", "pattern", s.pattern, "error", err)
		return false
	}
	return ok
}

// loadOne reads and parses a single content file.
func (s *Source) loadOne(path string) (core.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Record{}, &core.LoadError{Path: path, Err: err}
	}

	meta, content, err := ParseFrontmatter(string(data))
	if err != nil {
		var pe *core.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return core.Record{}, err
	}

	name := filepath.Base(path)
	slug := name[:len(name)-len(filepath.Ext(name))]

	return core.Record{
		Metadata: meta,
		Slug:     slug,
		Content:  content,
	}, nil
}

// List loads every matching content file in the directory.
//
// A per-file failure is logged and that file is skipped: one malformed
// file must never prevent the rest of the directory from loading.
// Records come back in enumeration order; callers wanting a publication
// order apply core.SortByDate themselves.
//
// Note: context is not used for the blocking local file operations,
// mirroring the rest of this adapter.
func (s *Source) List(ctx context.Context) ([]core.Record, error) {
	var records []core.Record
	for _, name := range s.ListContentFiles() {
		rec, err := s.loadOne(filepath.Join(s.dir, name))
		if err != nil {
			s.logger.Warn("skipping content file", "file", name, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Get retrieves a single record by slug. The first matching file in
// enumeration order wins, consistent with the linear scan in the
// service layer.
func (s *Source) Get(ctx context.Context, slug string) (core.Record, error) {
	for _, name := range s.ListContentFiles() {
		if name[:len(name)-len(filepath.Ext(name))] != slug {
			continue
		}
		rec, err := s.loadOne(filepath.Join(s.dir, name))
		if err != nil {
			return core.Record{}, err
		}
		return rec, nil
	}
	return core.Record{}, fmt.Errorf("%q: %w", slug, core.ErrNotFound)
}

// Problem pairs a content file with the error that made it unloadable.
type Problem struct {
	Path string
	Err  error
}

// Check attempts to load every matching content file and reports the
// ones that fail, without skipping or logging. Used by tooling that
// wants the full error list rather than the degraded record set.
func (s *Source) Check(ctx context.Context) []Problem {
	var problems []Problem
	for _, name := range s.ListContentFiles() {
		if _, err := s.loadOne(filepath.Join(s.dir, name)); err != nil {
			problems = append(problems, Problem{Path: filepath.Join(s.dir, name), Err: err})
		}
	}
	return problems
}
