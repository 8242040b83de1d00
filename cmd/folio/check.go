package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/platform"
	"github.com/foliokit/folio/pkg/adapters/fs"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every content file",
	Long: `Check attempts to load every content file and reports the ones the
content service would skip (missing frontmatter, missing required fields,
unreadable files). Exits non-zero when any file fails.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		root, err := resolveRoot()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving root: %v\n", err)
			os.Exit(1)
		}

		cfg, err := platform.LoadConfig(filepath.Join(root, platform.ConfigFile))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
			os.Exit(1)
		}

		contentDir := cfg.ContentDir
		if contentDir == "" {
			contentDir = "content"
		}
		if !filepath.IsAbs(contentDir) {
			contentDir = filepath.Join(root, contentDir)
		}

		src := fs.NewSource(fs.Config{
			Dir:     contentDir,
			Pattern: cfg.Pattern,
			Logger:  slog.Default(),
		})

		problems := src.Check(context.Background())
		if len(problems) == 0 {
			fmt.Println("all content files are valid")
			return
		}

		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "%s: %v\n", p.Path, p.Err)
		}
		fmt.Fprintf(os.Stderr, "%d content file(s) failed validation\n", len(problems))
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
