package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oarkflow/mailmerge/internal/tmpl"
)

var previewLimit int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the merged messages",
	Long: `Validate the campaign like "check" does and print the message each
recipient would receive. Nothing is sent.

Examples:
  mailmerge preview
  mailmerge preview --limit 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, t, err := loadCampaign(out)
		if err != nil {
			return err
		}

		recipients := cfg.Recipients
		if previewLimit > 0 && previewLimit < len(recipients) {
			recipients = recipients[:previewLimit]
		}

		for i, r := range recipients {
			if i > 0 {
				fmt.Fprintln(out, strings.Repeat("-", 72))
			}
			fmt.Fprintf(out, "From: %s\n", cfg.From)
			fmt.Fprintf(out, "To: %s\n", r.Email)
			if len(cfg.Cc) > 0 {
				fmt.Fprintf(out, "Cc: %s\n", strings.Join(cfg.Cc, ", "))
			}
			if len(cfg.ReplyTo) > 0 {
				fmt.Fprintf(out, "Reply-To: %s\n", strings.Join(cfg.ReplyTo, ", "))
			}
			fmt.Fprintf(out, "Subject: %s\n\n", tmpl.Render(cfg.Subject, r))
			fmt.Fprintln(out, t.Render(r))
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVarP(&previewLimit, "limit", "n", 0, "render at most this many messages (0 means all)")
}
