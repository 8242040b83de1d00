package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio"
)

var (
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show a content record",
	Long:  `Show a content record by its slug. Outputs the raw body by default, or a JSON object with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		slug := args[0]
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

		rec, err := service.GetBySlug(context.Background(), slug)
		if err != nil {
			if errors.Is(err, folio.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "No record for slug %q\n", slug)
			} else {
				fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
			}
			os.Exit(1)
		}

		if showJSON {
			out := struct {
				Slug        string            `json:"slug"`
				Title       string            `json:"title"`
				PublishedAt string            `json:"publishedAt"`
				Summary     string            `json:"summary"`
				Image       string            `json:"image,omitempty"`
				Extra       map[string]string `json:"extra,omitempty"`
				Content     string            `json:"content"`
			}{
				Slug:        rec.Slug,
				Title:       rec.Metadata.Title,
				PublishedAt: rec.Metadata.PublishedAt,
				Summary:     rec.Metadata.Summary,
				Image:       rec.Metadata.Image,
				Extra:       rec.Metadata.Extra,
				Content:     rec.Content,
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Print(rec.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
