package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/checkup/internal/report"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List stored lead documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		collection, _ := cmd.Flags().GetString("collection")
		asJSON, _ := cmd.Flags().GetBool("json")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if collection == "" {
			collection = e.cfg.DocStore.Collection
		}
		subs, err := e.store.SubmissionRepo().List(cmd.Context(), collection, limit)
		if err != nil {
			return fmt.Errorf("list submissions: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(subs) == 0 {
			fmt.Fprintf(w, "No submissions in %q.\n", collection)
			return nil
		}

		if asJSON {
			for _, s := range subs {
				fmt.Fprintln(w, string(s.Data))
			}
			return nil
		}

		fmt.Fprintf(w, "%-36s  %-19s  %-20s  %-20s  %-14s  %s\n",
			"ID", "Created", "Name", "Company", "Tier", "Score")
		fmt.Fprintln(w, strings.Repeat("─", 124))
		for _, s := range subs {
			var p report.Payload
			if err := json.Unmarshal(s.Data, &p); err != nil {
				fmt.Fprintf(w, "%-36s  %-19s  (unreadable: %v)\n", s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"), err)
				continue
			}
			fmt.Fprintf(w, "%-36s  %-19s  %-20s  %-20s  %-14s  %d/%d\n",
				s.ID,
				s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(p.Lead.Name, 20),
				truncate(p.Lead.Company, 20),
				p.TierKey,
				p.Score.Total,
				p.MaxScore,
			)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func init() {
	submissionsCmd.Flags().StringP("collection", "c", "", "Collection to list (default: docstore.collection)")
	submissionsCmd.Flags().IntP("limit", "n", 20, "Number of documents to show")
	submissionsCmd.Flags().Bool("json", false, "Print raw JSON documents")
}
