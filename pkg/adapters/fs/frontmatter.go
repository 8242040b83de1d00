package fs

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/foliokit/folio/pkg/core"
)

// frontmatterRe captures the first header block bounded by a pair of
// "---" fences. Everything outside the block is body text.
var frontmatterRe = regexp.MustCompile(`(?s)---\s*(.*?)\s*---`)

// ParseFrontmatter splits raw content file text into its metadata record
// and trailing body.
//
// Inside the header block, each non-empty line is split on the first
// ": " occurrence into a key and a value; both are trimmed and one layer
// of matching surrounding quotes ('...' or "...") is stripped from the
// value. Lines without the separator are ignored, not rejected. Keys
// beyond the known set land in Metadata.Extra, so an extended header is
// fine; a header missing any of title, publishedAt or summary is not.
//
// Pure function: no I/O, the returned *core.ParseError carries no path.
func ParseFrontmatter(raw string) (core.Metadata, string, error) {
	loc := frontmatterRe.FindStringSubmatchIndex(raw)
	if loc == nil {
		return core.Metadata{}, "", &core.ParseError{Err: errors.New("missing frontmatter block")}
	}

	block := raw[loc[2]:loc[3]]
	content := strings.TrimSpace(raw[:loc[0]] + raw[loc[1]:])

	var meta core.Metadata
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		idx := strings.Index(line, ": ")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := stripQuotes(strings.TrimSpace(line[idx+2:]))

		switch key {
		case "title":
			meta.Title = value
		case "publishedAt":
			meta.PublishedAt = value
		case "summary":
			meta.Summary = value
		case "image":
			meta.Image = value
		default:
			if meta.Extra == nil {
				meta.Extra = make(map[string]string)
			}
			meta.Extra[key] = value
		}
	}

	if missing := meta.MissingFields(); len(missing) > 0 {
		return core.Metadata{}, "", &core.ParseError{
			Err: fmt.Errorf("missing required frontmatter fields: %s", strings.Join(missing, ", ")),
		}
	}

	return meta, content, nil
}

// stripQuotes removes one layer of matching surrounding quotes.
func stripQuotes(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '\'' || first == '"') {
		return value[1 : len(value)-1]
	}
	return value
}
