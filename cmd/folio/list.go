package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all content records, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root, err := resolveRoot()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving root: %v\n", err)
			os.Exit(1)
		}

		service, err := folio.New(root, folio.WithLogger(slog.Default()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing folio: %v\n", err)
			os.Exit(1)
		}

		records, err := service.GetAll(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing records: %v\n", err)
			os.Exit(1)
		}
		records = folio.SortByDate(records)

		if listJSON {
			type listItem struct {
				Slug        string `json:"slug"`
				Title       string `json:"title"`
				PublishedAt string `json:"publishedAt"`
				Summary     string `json:"summary"`
			}
			items := make([]listItem, 0, len(records))
			for _, rec := range records {
				items = append(items, listItem{
					Slug:        rec.Slug,
					Title:       rec.Metadata.Title,
					PublishedAt: rec.Metadata.PublishedAt,
					Summary:     rec.Metadata.Summary,
				})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(items); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		formatter := folio.NewFormatter()
		for _, rec := range records {
			fmt.Printf("%s  %s - %s\n", formatter.Format(rec.Metadata.PublishedAt, false), rec.Slug, rec.Metadata.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
