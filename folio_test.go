package folio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio"
)

func writePost(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func newSite(t *testing.T) (root, contentDir string) {
	t.Helper()
	root = t.TempDir()
	contentDir = filepath.Join(root, "content")
	require.NoError(t, os.MkdirAll(contentDir, 0755))
	return root, contentDir
}

func TestFolio_EndToEnd(t *testing.T) {
	root, contentDir := newSite(t)

	writePost(t, contentDir, "redis-clone.mdx", `---
title: "Building a Redis Clone"
publishedAt: 2023-03-10
summary: Notes from implementing RESP from scratch
---
The wire protocol turned out to be the easy part.
`)
	writePost(t, contentDir, "older-post.md", `---
title: Older Post
publishedAt: 2022-11-02
summary: An earlier entry
image: /images/older.png
---
Old content.
`)
	writePost(t, contentDir, "broken.mdx", "no frontmatter here")

	svc, err := folio.New(root)
	require.NoError(t, err)

	ctx := context.Background()

	records, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2, "the broken file must be skipped, not fatal")

	sorted := folio.SortByDate(records)
	assert.Equal(t, "redis-clone", sorted[0].Slug)
	assert.Equal(t, "older-post", sorted[1].Slug)
	assert.Equal(t, "/images/older.png", sorted[1].Metadata.Image)

	rec, err := svc.GetBySlug(ctx, "redis-clone")
	require.NoError(t, err)
	assert.Equal(t, "Building a Redis Clone", rec.Metadata.Title)
	assert.Equal(t, "The wire protocol turned out to be the easy part.", rec.Content)

	_, err = svc.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, folio.ErrNotFound)
}

func TestFolio_ConfigFile(t *testing.T) {
	root := t.TempDir()
	postsDir := filepath.Join(root, "articles")
	require.NoError(t, os.MkdirAll(postsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "folio.yaml"), []byte(`
contentDir: articles
pattern: "*.md"
ttl: 30s
`), 0644))

	writePost(t, postsDir, "kept.md", `---
title: Kept
publishedAt: 2023-01-01
summary: matches the pattern
---
x
`)
	writePost(t, postsDir, "skipped.mdx", `---
title: Skipped
publishedAt: 2023-01-01
summary: filtered by the pattern
---
x
`)

	svc, err := folio.New(root)
	require.NoError(t, err)

	records, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Slug)
}

func TestFolio_CacheServesStaleUntilInvalidated(t *testing.T) {
	root, contentDir := newSite(t)
	writePost(t, contentDir, "post.mdx", `---
title: Original
publishedAt: 2023-01-01
summary: v1
---
v1
`)

	svc, err := folio.New(root, folio.WithTTL(time.Hour))
	require.NoError(t, err)

	ctx := context.Background()
	rec, err := svc.GetBySlug(ctx, "post")
	require.NoError(t, err)
	assert.Equal(t, "Original", rec.Metadata.Title)

	writePost(t, contentDir, "post.mdx", `---
title: Updated
publishedAt: 2023-01-01
summary: v2
---
v2
`)

	rec, err = svc.GetBySlug(ctx, "post")
	require.NoError(t, err)
	assert.Equal(t, "Original", rec.Metadata.Title, "within the TTL the cache serves the old record")

	svc.InvalidateOne("post")
	rec, err = svc.GetBySlug(ctx, "post")
	require.NoError(t, err)
	assert.Equal(t, "Updated", rec.Metadata.Title)
}

func TestFolio_Formatter(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)
	}
	f := folio.NewFormatter(folio.WithClock(clock))

	assert.Equal(t, "January 1, 2023", f.Format("2023-01-01", false))
	assert.Equal(t, "January 1, 2023 (14d ago)", f.Format("2023-01-01", true))
	assert.Equal(t, "garbage", f.Format("garbage", true))
}

func TestFolio_ParseFrontmatter(t *testing.T) {
	meta, content, err := folio.ParseFrontmatter(`---
title: "Subtitle: The Sequel"
publishedAt: 2023-05-01
summary: quotes and colons
series: experiments
---
Body text.
`)
	require.NoError(t, err)
	assert.Equal(t, "Subtitle: The Sequel", meta.Title)
	assert.Equal(t, "experiments", meta.Extra["series"])
	assert.Equal(t, "Body text.", content)
}

func TestFolio_Version(t *testing.T) {
	assert.NotEmpty(t, folio.Version)
}
