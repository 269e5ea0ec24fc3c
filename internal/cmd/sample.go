package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oarkflow/mailmerge"
	"github.com/oarkflow/mailmerge/internal/config"
	"github.com/oarkflow/mailmerge/internal/tmpl"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate sample files",
	Long: `Print a sample campaign config or template to stdout.

Examples:
  mailmerge sample config > mailmerge.ini
  mailmerge sample template > mailmerge.tmpl`,
}

var sampleConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print a sample config",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), config.SampleConfig(mailmerge.Name, mailmerge.Version))
	},
}

var sampleTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a sample template",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), tmpl.SampleTemplate(mailmerge.Name, mailmerge.Version))
	},
}

func init() {
	sampleCmd.AddCommand(sampleConfigCmd)
	sampleCmd.AddCommand(sampleTemplateCmd)
}
