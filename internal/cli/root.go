package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BeepBoopVictor/project-scaffolder/internal/config"
	"github.com/BeepBoopVictor/project-scaffolder/internal/engine"
)

var (
	specPath string
	specText string
	outDir   string
	indent   int
	noFiles  bool
	force    bool
	dryRun   bool
)

// rootCmd is the root (and only) command for scaffolder.
var rootCmd = &cobra.Command{
	Use:     "scaffolder",
	Version: "dev",
	Short:   "Materialize a directory tree from an indented outline",
	Long: `scaffolder reads a plain-text, indentation-based tree description and
materializes it as a real directory/file hierarchy on disk.

Entries ending in "/" become directories; everything else becomes an
empty file. "#" starts a comment. Nesting is expressed with leading
spaces (--indent columns per level); tabs are not counted as
indentation. Inconsistent indentation never fails a run: an entry that
skips levels attaches to the deepest open directory.`,
	Example: `  scaffolder --spec tree.txt --out ./myproject
  scaffolder --text 'src/\n  main.py\nREADME.md' --out ./myproject --dry-run`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runScaffold,
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.Flags().StringVar(&specPath, "spec", "", "Path to a file containing the tree text")
	rootCmd.Flags().StringVar(&specText, "text", "", `Inline tree text (literal \n sequences become newlines)`)
	rootCmd.Flags().StringVar(&outDir, "out", "", "Destination root directory (created if missing)")
	rootCmd.Flags().IntVar(&indent, "indent", 2, "Spaces per nesting level (2 or 4)")
	rootCmd.Flags().BoolVar(&noFiles, "no-files", false, "Create directories only, skip all files")
	rootCmd.Flags().BoolVar(&force, "force", false, "Mark existing files as overwritten (content is never altered)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate without writing to the filesystem")

	rootCmd.MarkFlagsMutuallyExclusive("spec", "text")
	rootCmd.MarkFlagsOneRequired("spec", "text")
	_ = rootCmd.MarkFlagRequired("out")
	_ = rootCmd.MarkFlagFilename("spec")
	_ = rootCmd.MarkFlagDirname("out")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	// Configuration errors fail before any parsing or filesystem work.
	if indent != 2 && indent != 4 {
		return fmt.Errorf("%w: got %d", engine.ErrInvalidIndent, indent)
	}

	text, err := readSpecText()
	if err != nil {
		return err
	}

	dest, err := config.ResolveDest(outDir)
	if err != nil {
		return err
	}
	if err := config.EnsureDest(dest); err != nil {
		return err
	}

	eng := newEngine()
	result, err := eng.Build(context.Background(), &engine.BuildRequest{
		SpecText:    text,
		DestRoot:    dest,
		IndentSize:  indent,
		CreateFiles: !noFiles,
		Force:       force,
		DryRun:      dryRun,
	})
	if err != nil {
		return err
	}

	Report(result)
	return nil
}

// readSpecText loads the tree text from --spec or --text. Inline text
// uses literal two-character \n sequences for newlines, so shells don't
// need to pass real ones.
func readSpecText() (string, error) {
	if specPath != "" {
		data, err := os.ReadFile(specPath)
		if err != nil {
			return "", fmt.Errorf("failed to read spec file %s: %w", specPath, err)
		}
		return string(data), nil
	}
	return strings.ReplaceAll(specText, `\n`, "\n"), nil
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
