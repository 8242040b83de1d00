package core

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that no record exists for the requested slug.
var ErrNotFound = errors.New("record not found")

// ParseError reports a malformed or incomplete frontmatter block.
// Path is the originating file when known, empty for direct string parses.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadError reports an I/O failure while reading a content file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DirectoryError reports a failure enumerating the content directory.
// It is contained at the loader boundary: an unreadable directory
// degrades to an empty result set, it never aborts the caller.
type DirectoryError struct {
	Dir string
	Err error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("read dir %s: %v", e.Dir, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }
