package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/oarkflow/mailmerge"
	"github.com/oarkflow/mailmerge/internal/config"
	"github.com/oarkflow/mailmerge/internal/tmpl"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check configuration and template",
	Long: `Check if the campaign configuration and template are valid.

This validates:
  - Required sections and headers
  - All email addresses
  - Recipient metadata
  - That every template placeholder is supplied for every recipient`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, t, err := loadCampaign(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration is valid (%d recipients)\n", len(cfg.Recipients))
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Template %s is complete for every recipient (%d placeholder(s))\n", templateFile, len(t.Keys()))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit, and build date of mailmerge.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mailmerge.Name, mailmerge.Version)
		if mailmerge.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  Commit: %s\n", mailmerge.GitCommit)
		}
		if mailmerge.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  Built:  %s\n", mailmerge.BuildDate)
		}
	},
}

// loadCampaign loads and validates config and template and cross-checks
// them. Missing-key diagnostics are written to w.
func loadCampaign(w io.Writer) (*config.Config, *tmpl.Template, error) {
	if err := applySettings(); err != nil {
		return nil, nil, err
	}

	for _, path := range cfgFiles {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("config file not found: %s", path)
		}
	}

	cfg, err := config.Load(cfgFiles...)
	if err != nil {
		return nil, nil, fmt.Errorf("config validation failed: %w", err)
	}
	log.Info("Config loaded", "files", cfgFiles, "recipients", len(cfg.Recipients))
	log.Debug("Config", "value", cfg.String())

	t, err := tmpl.Load(templateFile)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Template loaded", "path", templateFile, "keys", t.Keys())

	if err := t.CheckRecipients(cfg.Recipients); err != nil {
		var mke *tmpl.MissingKeysError
		if errors.As(err, &mke) {
			for _, p := range mke.Problems {
				fmt.Fprintf(w, "✗ %s\n", p)
			}
			return nil, nil, fmt.Errorf("%d recipient(s) lack template data", len(mke.Problems))
		}
		return nil, nil, err
	}
	return cfg, t, nil
}
