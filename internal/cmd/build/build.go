// Package build provides the command that renders a site to disk.
package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"impractical.co/notheme"
	"impractical.co/notheme/internal/config"
	"impractical.co/notheme/internal/content"
	"impractical.co/notheme/internal/publish"
)

type buildOptions struct {
	configPath  string
	outputDir   string
	concurrency int
	logLevel    string
	noColor     bool

	stdout io.Writer
	stderr io.Writer
}

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site to HTML",
		Long: `Render every page of the site described by the config file, writing
each one to <output>/<path>/index.html.`,
		Example: `  # Build using ./site.yml
  notheme build

  # Build into a different directory
  notheme build --config blog/site.yml --output /tmp/blog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Get global flags
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.logLevel, _ = cmd.Flags().GetString("log-level")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runBuild(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "directory to write the site to (default from config)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "pages to render at once (default: number of CPUs)")

	return cmd
}

func runBuild(ctx context.Context, opts *buildOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.noColor {
		color.NoColor = true
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(opts.stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadWithEnv(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	baseURL, err := cfg.BaseURL()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	contentDir := relativeTo(opts.configPath, cfg.ContentDir)
	logger.DebugContext(ctx, "loading content", "dir", contentDir)
	site, err := content.Load(os.DirFS(contentDir), content.Options{
		Name:        cfg.Name,
		Description: cfg.Description,
		BaseURL:     baseURL,
		Language:    cfg.Language,
		TagsPath:    cfg.TagsPath,
	})
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	// --output is relative to the working directory, the config's
	// output_dir to the config file
	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = relativeTo(opts.configPath, cfg.OutputDir)
	}
	publisher := publish.Publisher{
		Theme:       notheme.NoTheme(),
		OutputDir:   outputDir,
		Concurrency: opts.concurrency,
		Logger:      logger,
	}
	stats, err := publisher.Publish(ctx, site)
	if err != nil {
		return fmt.Errorf("failed to build site: %w", err)
	}
	logger.InfoContext(ctx, "built site", "written", stats.Written, "skipped", stats.Skipped, "output", outputDir)

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)
	green.Fprintf(opts.stdout, "Built %d pages", stats.Written)
	fmt.Fprintf(opts.stdout, " in %s\n", outputDir)
	if stats.Skipped > 0 {
		dim.Fprintf(opts.stdout, "Skipped %d pages\n", stats.Skipped)
	}
	return nil
}

// relativeTo resolves path against the directory holding configPath, unless
// it's already absolute.
func relativeTo(configPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(configPath), path)
}
