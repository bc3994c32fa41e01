package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/webcraftstudio/webcraft/internal/client"
	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/notify"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Work with the contact form",
}

var contactSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Fill in and submit the contact form",
	Long: `Fill in the contact form from flags and submit it to a running site, the
same way a visitor would.

Example:
  webcraft contact send --name "Jane" --email jane@example.com --message "Hi"
  webcraft contact send --dry-run --variant standalone --business Acme ...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		variant := cfg.Variant()
		if v, _ := cmd.Flags().GetString("variant"); v != "" {
			if variant, err = contact.ParseVariant(v); err != nil {
				return err
			}
		}

		var submitter contact.Submitter
		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			delay := cfg.SubmitDelay
			if delay == 0 {
				delay = contact.DefaultSimulatedDelay
			}
			submitter = contact.SimulatedSubmitter{Delay: delay}
		} else {
			baseURL, _ := cmd.Flags().GetString("url")
			if baseURL == "" {
				baseURL = cfg.BaseURL
			}
			hs := client.NewHTTPSubmitter(baseURL)
			hs.RecaptchaToken, _ = cmd.Flags().GetString("recaptcha-token")
			submitter = hs
		}

		fields := map[contact.Field]string{}
		for _, f := range []contact.Field{contact.FieldName, contact.FieldEmail, contact.FieldCompany, contact.FieldBusiness, contact.FieldBudget, contact.FieldMessage} {
			if v, _ := cmd.Flags().GetString(string(f)); v != "" {
				fields[f] = v
			}
		}

		return sendContact(cmd.Context(), cmd.OutOrStdout(), variant, submitter, fields)
	},
}

var contactBudgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List the accepted budget ranges",
	Run: func(cmd *cobra.Command, args []string) {
		for _, b := range contact.BudgetRanges() {
			fmt.Fprintln(cmd.OutOrStdout(), b)
		}
	},
}

// sendContact drives a controller through one submission and prints every
// notification it raises
func sendContact(ctx context.Context, out io.Writer, variant contact.Variant, submitter contact.Submitter, fields map[contact.Field]string) error {
	board := notify.NewBoard(notify.WithOnChange(func(n notify.Notification, visible bool) {
		if visible {
			fmt.Fprintln(out, formatNotification(n))
		}
	}))
	defer board.Close()

	ctrl := contact.NewController(variant, submitter, board)
	for f, v := range fields {
		ctrl.OnFieldChange(f, v)
	}

	submission, err := ctrl.Start(ctx)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " Sending..."
	s.Start()
	result := submission.Wait()
	s.Stop()

	switch result.Outcome {
	case contact.OutcomeDelivered:
		if result.Reference != "" {
			fmt.Fprintf(out, "Reference: %s\n", result.Reference)
		}
		return nil
	case contact.OutcomeRejected:
		return fmt.Errorf("submission rejected: %s", strings.Join(result.Errors, "; "))
	default:
		return fmt.Errorf("submission failed: %w", result.Err)
	}
}

func formatNotification(n notify.Notification) string {
	prefix := "✓"
	if n.Kind == notify.KindError {
		prefix = "✗"
	}
	if n.Title != "" {
		return fmt.Sprintf("%s %s %s", prefix, n.Title, n.Text)
	}
	return fmt.Sprintf("%s %s", prefix, n.Text)
}

func init() {
	flags := contactSendCmd.Flags()
	flags.String("name", "", "Your name")
	flags.String("email", "", "Your email address")
	flags.String("company", "", "Company name")
	flags.String("business", "", "Business name (standalone form)")
	flags.String("budget", "", "Budget range, see 'webcraft contact budgets'")
	flags.String("message", "", "Project details")
	flags.String("variant", "", "Form variant: page or standalone (default from CONTACT_VARIANT)")
	flags.String("url", "", "Site base URL (default from BASE_URL)")
	flags.String("recaptcha-token", "", "reCAPTCHA token to send along")
	flags.Bool("dry-run", false, "Simulate delivery without contacting the site")

	contactCmd.AddCommand(contactSendCmd)
	contactCmd.AddCommand(contactBudgetsCmd)
}
