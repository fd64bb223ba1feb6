package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/pinboard/internal/infrastructure/config"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown from the command tree",
	Long: `Generate documentation from the command definitions.

Formats:
  man       groff manual pages, installed to ~/.local/share/man/man1/ by default
  markdown  one markdown file per command, written to ./docs by default

Examples:
  pinboard gen-docs
  pinboard gen-docs --format markdown --output ./docs`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir

	var (
		ext      string
		generate func(string) error
	)
	switch genDocsFormat {
	case "man":
		ext = ".1"
		generate = func(dir string) error {
			now := time.Now()
			return doc.GenManTree(rootCmd, &doc.GenManHeader{
				Title:   "PINBOARD",
				Section: "1",
				Source:  "pinboard " + buildInfo.Version,
				Manual:  "Pinboard Manual",
				Date:    &now,
			}, dir)
		}
		if outputDir == "" {
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		}
	case "markdown":
		ext = ".md"
		generate = func(dir string) error {
			return doc.GenMarkdownTree(rootCmd, dir)
		}
		if outputDir == "" {
			outputDir = "./docs"
		}
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output
	rootCmd.DisableAutoGenTag = true
	if err := generate(outputDir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s docs in %s\n", genDocsFormat, outputDir)
	listGenerated(cmd.OutOrStdout(), outputDir, ext)
	return nil
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
