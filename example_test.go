package folio_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/foliokit/folio"
)

func Example() {
	root, err := os.MkdirTemp("", "folio-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(root)

	contentDir := filepath.Join(root, "content")
	if err := os.MkdirAll(contentDir, 0755); err != nil {
		log.Fatal(err)
	}

	post := `---
title: Hello World
publishedAt: 2023-01-01
summary: The first post
---
Welcome to the site.
`
	if err := os.WriteFile(filepath.Join(contentDir, "hello-world.mdx"), []byte(post), 0644); err != nil {
		log.Fatal(err)
	}

	svc, err := folio.New(root)
	if err != nil {
		log.Fatal(err)
	}

	records, err := svc.GetAll(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	clock := func() time.Time {
		return time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)
	}
	formatter := folio.NewFormatter(folio.WithClock(clock))

	for _, r := range folio.SortByDate(records) {
		fmt.Printf("%s (%s)\n", r.Metadata.Title, formatter.Format(r.Metadata.PublishedAt, false))
	}

	// Output:
	// Hello World (January 1, 2023)
}
