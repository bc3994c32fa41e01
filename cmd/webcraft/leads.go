package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/webcraftstudio/webcraft/internal/db"
	"github.com/webcraftstudio/webcraft/internal/repository"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Read stored contact form leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the newest leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		databaseURL, _ := cmd.Flags().GetString("db")
		if databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		database, err := db.Open(cmd.Context(), databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		return listLeads(cmd.Context(), cmd.OutOrStdout(), repository.NewLeadRepository(database), offset, limit)
	},
}

func listLeads(ctx context.Context, out io.Writer, repo repository.LeadRepository, offset, limit int) error {
	leads, err := repo.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}
	total, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count leads: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECEIVED\tNAME\tEMAIL\tCOMPANY\tBUDGET\tMESSAGE")
	for _, l := range leads {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.CreatedAt.Local().Format(time.DateTime),
			l.Name,
			l.Email,
			dash(l.Company),
			dash(l.Budget),
			truncate(l.Message, 40),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Showing %d of %d leads\n", len(leads), total)
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	leadsListCmd.Flags().String("db", "", "Database URL (default from DATABASE_URL)")
	leadsListCmd.Flags().Int("limit", 20, "Number of leads to show")
	leadsListCmd.Flags().Int("offset", 0, "Number of leads to skip")

	leadsCmd.AddCommand(leadsListCmd)
}
