// Package root provides the root command for the notheme CLI.
package root

import (
	"github.com/spf13/cobra"

	"impractical.co/notheme/internal/cmd/build"
	"impractical.co/notheme/internal/config"
	"impractical.co/notheme/internal/version"
)

// NewCmdRoot creates the root command for notheme.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notheme",
		Short: "Build a static site with the notheme theme",
		Long: `notheme turns a directory of Markdown files into a static site of
plain, unstyled HTML pages.

Get started by writing a site.yml and running: notheme build`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "config file")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.SetVersionTemplate("notheme version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	cmd.AddCommand(build.NewCmdBuild())

	return cmd
}
