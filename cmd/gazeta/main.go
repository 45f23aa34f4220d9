package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolbeans/gazeta/pkg/config"
	"github.com/coolbeans/gazeta/pkg/export"
	"github.com/coolbeans/gazeta/pkg/fetch"
	"github.com/coolbeans/gazeta/pkg/gazette"
	"github.com/coolbeans/gazeta/pkg/pdftext"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "gazeta",
		Short: "Extrator de documentos oficiais do diário do legislativo",
		Long: `Gazeta extracts structured legislative records from official-gazette
PDF documents: enacted norms, propositions in process, requirements and
committee opinions, cross-referenced and deduplicated into per-category
CSV tables.`,
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(kindsCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	var (
		sourcePath string
		sourceURL  string
		configPath string
		outputDir  string
		toStdout   bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract legislative records from a gazette document",
		Long: `Extract legislative records from a gazette PDF (or pre-extracted
text file) and write one CSV file per category.

Example:
  gazeta extract --source diario-2024-03-12.pdf
  gazeta extract --url https://example.gov.br/diario/2024-03-12.pdf --output out/
  gazeta extract --source diario.txt --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}

			text, err := acquireText(cmd.Context(), cfg, logger, sourcePath, sourceURL)
			if err != nil {
				return err
			}
			if cfg.Extraction.Normalize {
				text = gazette.Normalize(text)
			}
			logger.Debug("document acquired", "chars", len(text))

			processor := gazette.NewProcessor(cfg.Options())
			result := processor.Process(text)
			logger.Debug("document processed", "ignored_requirements", result.Ignored)

			if toStdout {
				for _, name := range []string{
					gazette.TableNorms, gazette.TablePropositions,
					gazette.TableRequirements, gazette.TableOpinions,
					gazette.TableAdministrative,
				} {
					fmt.Println(export.FormatTable(result.Tables[name]))
				}
				return nil
			}

			written, err := export.WriteCSVFiles(cfg.Output.Dir, result.Tables)
			if err != nil {
				return err
			}
			fmt.Print(export.FormatSummary(result.Tables))
			for _, path := range written {
				fmt.Printf("  -> %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", "", "path to a gazette PDF or text file")
	cmd.Flags().StringVar(&sourceURL, "url", "", "direct URL of a gazette PDF")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&outputDir, "output", "", "output directory for CSV files")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print tables to stdout instead of writing CSV")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the recognized instrument kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-6s %-12s %s\n", "SIGLA", "CATEGORIA", "GRAMÁTICA")
			fmt.Println(strings.Repeat("─", 72))
			for _, grammar := range gazette.DefaultGrammars() {
				kind := grammar.Kind
				fmt.Printf("%-6s %-12s %s\n",
					kind.Abbrev(), kind.Category(), strings.Join(grammar.Phrases, " | "))
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gazeta version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gazeta %s\n", version)
		},
	}
}

// loadConfig loads the given config file, or defaults when none is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// acquireText obtains the document's text from a local file or URL. Local
// ".txt" files are taken as already-extracted text; everything else goes
// through PDF extraction.
func acquireText(ctx context.Context, cfg *config.Config, logger *slog.Logger, sourcePath, sourceURL string) (string, error) {
	switch {
	case sourcePath != "" && sourceURL != "":
		return "", fmt.Errorf("--source and --url are mutually exclusive")
	case sourcePath != "":
		content, err := os.ReadFile(sourcePath)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", sourcePath, err)
		}
		if strings.EqualFold(filepath.Ext(sourcePath), ".txt") {
			return string(content), nil
		}
		logger.Debug("extracting PDF text", "path", sourcePath)
		return pdftext.Extract(content)
	case sourceURL != "":
		logger.Debug("downloading gazette", "url", sourceURL)
		downloader := fetch.NewDownloader(fetch.NewTimeoutHTTPClient(cfg.Fetch.Timeout))
		content, err := downloader.Download(ctx, sourceURL)
		if err != nil {
			return "", err
		}
		return pdftext.Extract(content)
	default:
		return "", fmt.Errorf("either --source or --url is required")
	}
}

// newLogger builds the CLI logger; debug level only with --verbose.
func newLogger(verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(verbose),
	}))
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
