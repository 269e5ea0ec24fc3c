/*
Package cmd provides the CLI commands for mailmerge.
*/
package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/oarkflow/mailmerge/internal/settings"
)

var (
	cfgFiles     []string
	templateFile string
	verbose      bool
	debug        bool

	opts    *settings.Settings
	optsErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mailmerge",
	Short: "A mail merge campaign tool",
	Long: `Mailmerge validates mail merge campaigns before anything is sent.

A campaign is a config file with a sender, a subject and a list of
recipients with per-recipient metadata, plus a text template with
%KEY% placeholders.

Example:
  mailmerge check                      # Validate config and template
  mailmerge check -c a.ini -c b.ini    # Layer b.ini over a.ini
  mailmerge preview --limit 2          # Render the first two messages
  mailmerge sample config > my.ini     # Start a new campaign`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringArrayVarP(&cfgFiles, "config", "c", nil, "config file, may be repeated (default is $MAILMERGE_CONFIG or mailmerge.ini)")
	rootCmd.PersistentFlags().StringVarP(&templateFile, "template", "t", "", "template file (default is $MAILMERGE_TEMPLATE or mailmerge.tmpl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig never fails: commands that need the settings report optsErr
// through applySettings
func initConfig() {
	opts, optsErr = settings.Load()

	switch {
	case debug:
		log.SetLevel(log.DebugLevel)
	case verbose:
		log.SetLevel(log.InfoLevel)
	case optsErr == nil:
		log.SetLevel(opts.Level())
	default:
		log.SetLevel(log.WarnLevel)
	}
}

// applySettings fills the campaign files not given on the command line
func applySettings() error {
	if optsErr != nil {
		return fmt.Errorf("failed to load settings: %w", optsErr)
	}
	if opts == nil {
		return nil
	}
	if len(cfgFiles) == 0 {
		cfgFiles = []string{opts.Config}
	}
	if templateFile == "" {
		templateFile = opts.Template
	}
	return nil
}
